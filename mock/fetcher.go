package mock

import (
	"context"

	"github.com/fwojciec/unfurl"
)

var _ unfurl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of unfurl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*unfurl.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*unfurl.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ unfurl.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of unfurl.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
