// Package http provides an HTTP-based implementation of unfurl.Fetcher.
// It retrieves pages and decodes them to UTF-8 so the resolution core only
// ever sees finished text, along with the effective URL to resolve relative
// links against.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/unfurl"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps how much of a response body is read. Preview
// metadata lives in <head>, so oversized documents are truncated rather
// than rejected.
const DefaultMaxBodySize = 10 << 20 // 10 MiB

// DefaultUserAgent identifies the client to origin servers.
const DefaultUserAgent = "unfurl/1.0 (+https://github.com/fwojciec/unfurl)"

// Ensure Fetcher implements unfurl.Fetcher at compile time.
var _ unfurl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML documents over HTTP. Response bodies are decoded
// using the Content-Type charset (with in-document detection as fallback),
// matching the contract that charset handling belongs to the fetch layer.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize caps the number of response bytes read per fetch.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves and decodes the page at rawurl. The returned page carries
// the effective URL after redirects, suitable as the resolution base.
func (f *Fetcher) Fetch(ctx context.Context, rawurl string) (*unfurl.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, unfurl.Errorf(unfurl.EINVALID, "invalid URL %q: %v", rawurl, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawurl)
	}

	body := io.LimitReader(resp.Body, f.maxBodySize)
	decoded, err := charset.NewReader(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", rawurl, err)
	}

	text, err := io.ReadAll(decoded)
	if err != nil {
		return nil, err
	}

	return &unfurl.Page{
		HTML: string(text),
		URL:  resp.Request.URL,
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
