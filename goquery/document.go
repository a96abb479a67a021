// Package goquery provides a goquery-based implementation of unfurl.Loader.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/unfurl"
)

// Ensure Loader implements unfurl.Loader at compile time.
var _ unfurl.Loader = (*Loader)(nil)

// Loader parses HTML text into queryable documents.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses html leniently, the way browsers do: unclosed tags, missing
// quotes, and stray markup never abort parsing. It fails only when the
// input cannot be tokenized as markup at all, which for text input means
// invalid UTF-8 or embedded NUL bytes.
//
// HTML entities are decoded here, at parse time. Downstream normalization
// must not unescape again.
func (l *Loader) Load(html string) (unfurl.Document, error) {
	if !utf8.ValidString(html) {
		return nil, unfurl.Errorf(unfurl.EUNPARSABLE, "input is not valid UTF-8 text")
	}
	if strings.ContainsRune(html, '\x00') {
		return nil, unfurl.Errorf(unfurl.EUNPARSABLE, "input contains NUL bytes")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, unfurl.Errorf(unfurl.EUNPARSABLE, "failed to parse HTML: %v", err)
	}

	return &Document{doc: doc}, nil
}

// Ensure Document implements unfurl.Document at compile time.
var _ unfurl.Document = (*Document)(nil)

// Document wraps a parsed goquery document. It is read-only after
// construction and safe for concurrent queries.
type Document struct {
	doc *goquery.Document
}

// First returns the value read from the first element matching the CSS
// query, in document order. An empty attr reads the element's text content.
func (d *Document) First(query, attr string) (string, bool) {
	sel := d.doc.Find(query).First()
	if sel.Length() == 0 {
		return "", false
	}
	if attr == "" {
		return sel.Text(), true
	}
	return sel.Attr(attr)
}

// All returns the value for every matching element in document order,
// skipping elements without the requested attribute.
func (d *Document) All(query, attr string) []string {
	var values []string
	d.doc.Find(query).Each(func(_ int, sel *goquery.Selection) {
		if attr == "" {
			values = append(values, sel.Text())
			return
		}
		if v, ok := sel.Attr(attr); ok {
			values = append(values, v)
		}
	})
	return values
}

// BaseHref returns the href of the document's <base> tag, if present.
func (d *Document) BaseHref() (string, bool) {
	return d.First("base[href]", "href")
}
