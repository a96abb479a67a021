package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/unfurl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ unfurl.PreviewCache = (*PreviewService)(nil)

// PreviewService implements unfurl.PreviewCache using SQLite. The resolved
// record is stored as a JSON document; the page URL is the lookup key.
type PreviewService struct {
	db *DB
}

// NewPreviewService creates a new PreviewService.
func NewPreviewService(db *DB) *PreviewService {
	return &PreviewService{db: db}
}

// HashHTML computes the xxHash of fetched HTML and returns it as a hex
// string. Callers compare it against a cached entry's HTMLHash to detect
// unchanged pages.
func HashHTML(html string) string {
	h := xxhash.Sum64String(html)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// GetPreview returns the cached preview for url.
// Returns ENOTFOUND if none is stored.
func (s *PreviewService) GetPreview(ctx context.Context, url string) (*unfurl.CachedPreview, error) {
	var (
		cached      unfurl.CachedPreview
		previewJSON string
		fetchedAt   string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, html_hash, preview, fetched_at
		FROM previews
		WHERE url = ?
	`, url).Scan(&cached.ID, &cached.URL, &cached.HTMLHash, &previewJSON, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, unfurl.Errorf(unfurl.ENOTFOUND, "no cached preview for %q", url)
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(previewJSON), &cached.Preview); err != nil {
		return nil, fmt.Errorf("failed to decode cached preview: %w", err)
	}

	cached.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &cached, nil
}

// PutPreview stores the preview, replacing any existing entry for the same
// URL. The ID and FetchedAt fields are assigned here.
func (s *PreviewService) PutPreview(ctx context.Context, p *unfurl.CachedPreview) error {
	if err := p.Validate(); err != nil {
		return err
	}

	p.ID = uuid.New().String()
	p.FetchedAt = time.Now().UTC()

	previewJSON, err := json.Marshal(p.Preview)
	if err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO previews (id, url, html_hash, preview, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			id = excluded.id,
			html_hash = excluded.html_hash,
			preview = excluded.preview,
			fetched_at = excluded.fetched_at
	`, p.ID, p.URL, p.HTMLHash, string(previewJSON), p.FetchedAt.Format(time.RFC3339))

	return err
}
