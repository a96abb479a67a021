package unfurl

import (
	"context"
	"time"
)

// CachedPreview is a stored resolution result.
type CachedPreview struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	HTMLHash  string    `json:"htmlHash"`
	Preview   *Preview  `json:"preview"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the cached preview contains invalid fields.
func (c *CachedPreview) Validate() error {
	if c.URL == "" {
		return Errorf(EINVALID, "cached preview URL required")
	}
	if c.Preview == nil {
		return Errorf(EINVALID, "cached preview record required")
	}
	return nil
}

// PreviewCache stores resolved previews keyed by page URL.
type PreviewCache interface {
	// GetPreview returns the cached preview for url.
	// Returns ENOTFOUND if none is stored.
	GetPreview(ctx context.Context, url string) (*CachedPreview, error)

	// PutPreview stores the preview, replacing any existing entry for the
	// same URL.
	PutPreview(ctx context.Context, p *CachedPreview) error
}
