package mock

import "github.com/fwojciec/unfurl"

var _ unfurl.Document = (*Document)(nil)

// Document is a mock implementation of unfurl.Document.
type Document struct {
	FirstFn    func(query, attr string) (string, bool)
	AllFn      func(query, attr string) []string
	BaseHrefFn func() (string, bool)
}

func (d *Document) First(query, attr string) (string, bool) {
	return d.FirstFn(query, attr)
}

func (d *Document) All(query, attr string) []string {
	return d.AllFn(query, attr)
}

func (d *Document) BaseHref() (string, bool) {
	return d.BaseHrefFn()
}

var _ unfurl.Loader = (*Loader)(nil)

// Loader is a mock implementation of unfurl.Loader.
type Loader struct {
	LoadFn func(html string) (unfurl.Document, error)
}

func (l *Loader) Load(html string) (unfurl.Document, error) {
	return l.LoadFn(html)
}
