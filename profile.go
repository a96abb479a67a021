package unfurl

import "net/url"

// Profile customizes resolved previews for a specific site. Some sites
// publish metadata that needs adjustment before it is useful (e.g., image
// URLs pointing at hosts that reject hotlinking).
type Profile interface {
	// Name returns the profile's identifier (e.g., "youtube").
	Name() string

	// Fits reports whether the profile applies to the page at u.
	Fits(u *url.URL) bool

	// Apply returns the adjusted preview. Implementations must not mutate
	// the input record.
	Apply(p *Preview) *Preview
}
