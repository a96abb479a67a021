package mock

import (
	"net/url"

	"github.com/fwojciec/unfurl"
)

var _ unfurl.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of unfurl.Resolver.
type Resolver struct {
	ResolveFn func(html string, base *url.URL) (*unfurl.Preview, error)
}

func (r *Resolver) Resolve(html string, base *url.URL) (*unfurl.Preview, error) {
	return r.ResolveFn(html, base)
}
