package unfurl

import "net/url"

// Resolver resolves preview metadata from raw HTML text.
type Resolver interface {
	// Resolve parses html, queries each vocabulary, and merges valid
	// candidates into a Preview under the fixed vocabulary priority.
	// base is used only to resolve relative URL candidates; when nil,
	// relative candidates are dropped rather than guessed.
	//
	// Resolution is a pure function of its arguments: the same html and
	// base always produce an identical Preview. The only failure mode is
	// EUNPARSABLE from the document loader; an all-absent Preview is a
	// valid result.
	Resolve(html string, base *url.URL) (*Preview, error)
}
