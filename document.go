package unfurl

// Document is a parsed HTML document. Implementations are read-only after
// construction, so concurrent queries from multiple extractors need no
// synchronization.
type Document interface {
	// First returns the value read from the first element matching the CSS
	// query, in document order. An empty attr reads the element's text
	// content instead of an attribute. ok is false when nothing matches or
	// the matched element lacks the attribute.
	First(query, attr string) (value string, ok bool)

	// All returns the value for every matching element in document order,
	// skipping elements without the requested attribute.
	All(query, attr string) []string

	// BaseHref returns the href of the document's <base> tag, if present.
	BaseHref() (string, bool)
}

// Loader parses raw HTML text into a queryable Document.
type Loader interface {
	// Load parses html into a Document. It fails with EUNPARSABLE only when
	// the input cannot be tokenized as markup at all; malformed but
	// tokenizable HTML (unclosed tags, missing quotes) parses leniently,
	// matching the browser model.
	Load(html string) (Document, error)
}
