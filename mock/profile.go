package mock

import (
	"net/url"

	"github.com/fwojciec/unfurl"
)

var _ unfurl.Profile = (*Profile)(nil)

// Profile is a mock implementation of unfurl.Profile.
type Profile struct {
	NameFn  func() string
	FitsFn  func(u *url.URL) bool
	ApplyFn func(p *unfurl.Preview) *unfurl.Preview
}

func (p *Profile) Name() string {
	return p.NameFn()
}

func (p *Profile) Fits(u *url.URL) bool {
	return p.FitsFn(u)
}

func (p *Profile) Apply(preview *unfurl.Preview) *unfurl.Preview {
	return p.ApplyFn(preview)
}
