package mock

import (
	"context"

	"github.com/fwojciec/unfurl"
)

var _ unfurl.PreviewCache = (*PreviewCache)(nil)

// PreviewCache is a mock implementation of unfurl.PreviewCache.
type PreviewCache struct {
	GetPreviewFn func(ctx context.Context, url string) (*unfurl.CachedPreview, error)
	PutPreviewFn func(ctx context.Context, p *unfurl.CachedPreview) error
}

func (c *PreviewCache) GetPreview(ctx context.Context, url string) (*unfurl.CachedPreview, error) {
	return c.GetPreviewFn(ctx, url)
}

func (c *PreviewCache) PutPreview(ctx context.Context, p *unfurl.CachedPreview) error {
	return c.PutPreviewFn(ctx, p)
}
