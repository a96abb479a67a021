// Package profile contains site-specific preview adjustments implementing
// unfurl.Profile.
package profile

import (
	"net/url"
	"strings"

	"github.com/fwojciec/unfurl"
)

// youtubeImageHost serves YouTube thumbnails. Page markup sometimes points
// image URLs at hosts that reject hotlinking; the thumbnail CDN accepts the
// same paths.
const youtubeImageHost = "i.ytimg.com"

// Ensure YouTube implements unfurl.Profile at compile time.
var _ unfurl.Profile = (*YouTube)(nil)

// YouTube rewrites preview images onto YouTube's thumbnail CDN.
type YouTube struct{}

// NewYouTube creates a new YouTube profile.
func NewYouTube() *YouTube {
	return &YouTube{}
}

// Name returns the profile's identifier.
func (p *YouTube) Name() string {
	return "youtube"
}

// Fits reports whether u points at a YouTube page.
func (p *YouTube) Fits(u *url.URL) bool {
	host := u.Hostname()
	return strings.Contains(host, "youtube.com") || strings.Contains(host, "youtu.be")
}

// Apply returns a copy of the preview with the image rewritten to the
// thumbnail CDN, preserving the image path. Previews without an image are
// returned unchanged.
func (p *YouTube) Apply(preview *unfurl.Preview) *unfurl.Preview {
	img := preview.Get(unfurl.FieldImage)
	if img == nil {
		return preview
	}

	u, err := url.Parse(img.Text)
	if err != nil {
		return preview
	}
	u.Scheme = "https"
	u.Host = youtubeImageHost

	out := *preview
	out.Image = &unfurl.Value{Text: u.String(), Source: img.Source}
	return &out
}
