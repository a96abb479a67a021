package unfurl

import (
	"context"
	"net/url"
)

// Page is a fetched HTML document, decoded to UTF-8 by the fetch layer.
type Page struct {
	// HTML is the decoded document text.
	HTML string

	// URL is the effective URL after redirects. Callers pass it to the
	// resolver as the base for relative URL candidates.
	URL *url.URL
}

// Fetcher retrieves HTML pages. Fetching happens entirely outside the
// resolution core; the resolver only ever sees finished text.
type Fetcher interface {
	// Fetch retrieves and decodes the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter bounds request rates per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
