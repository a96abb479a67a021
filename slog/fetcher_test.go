package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"testing"

	"github.com/fwojciec/unfurl"
	"github.com/fwojciec/unfurl/mock"
	unfurlslog "github.com/fwojciec/unfurl/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs url and response size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		final, err := url.Parse("https://example.com/page")
		require.NoError(t, err)
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, u string) (*unfurl.Page, error) {
				return &unfurl.Page{HTML: "<html></html>", URL: final}, nil
			},
		}

		fetcher := unfurlslog.NewLoggingFetcher(inner, logger)
		page, err := fetcher.Fetch(context.Background(), "https://example.com/page")

		require.NoError(t, err)
		assert.Equal(t, final, page.URL)
		output := buf.String()
		assert.Contains(t, output, "page fetch")
		assert.Contains(t, output, "url=https://example.com/page")
		assert.Contains(t, output, "bytes=13")
	})

	t.Run("delegates Close", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error { closed = true; return nil },
		}

		fetcher := unfurlslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}
