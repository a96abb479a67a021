package goquery_test

import (
	"testing"

	"github.com/fwojciec/unfurl"
	"github.com/fwojciec/unfurl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("parses well-formed HTML", func(t *testing.T) {
		t.Parallel()

		loader := goquery.NewLoader()
		doc, err := loader.Load(`<html><head><title>Hello</title></head><body></body></html>`)

		require.NoError(t, err)
		title, ok := doc.First("title", "")
		require.True(t, ok)
		assert.Equal(t, "Hello", title)
	})

	t.Run("parses malformed HTML leniently", func(t *testing.T) {
		t.Parallel()

		loader := goquery.NewLoader()
		doc, err := loader.Load(`<html><head><meta property=og:title content="Unquoted><title>Broken`)

		require.NoError(t, err)
		require.NotNil(t, doc)
	})

	t.Run("rejects invalid UTF-8 with EUNPARSABLE", func(t *testing.T) {
		t.Parallel()

		loader := goquery.NewLoader()
		_, err := loader.Load(string([]byte{0xff, 0xfe, 0x81, 0x82, 0x03}))

		require.Error(t, err)
		assert.Equal(t, unfurl.EUNPARSABLE, unfurl.ErrorCode(err))
	})

	t.Run("rejects input with NUL bytes with EUNPARSABLE", func(t *testing.T) {
		t.Parallel()

		loader := goquery.NewLoader()
		_, err := loader.Load("<html>\x00</html>")

		require.Error(t, err)
		assert.Equal(t, unfurl.EUNPARSABLE, unfurl.ErrorCode(err))
	})
}

func TestDocument_First(t *testing.T) {
	t.Parallel()

	loader := goquery.NewLoader()
	doc, err := loader.Load(`<html lang="en-US"><head>
		<meta property="og:image" content="https://example.com/first.png">
		<meta property="og:image" content="https://example.com/second.png">
		<meta name="empty" content="">
	</head><body><p>  text  </p></body></html>`)
	require.NoError(t, err)

	t.Run("first match in document order wins", func(t *testing.T) {
		t.Parallel()

		v, ok := doc.First(`meta[property="og:image"]`, "content")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/first.png", v)
	})

	t.Run("empty attr reads element text", func(t *testing.T) {
		t.Parallel()

		v, ok := doc.First("p", "")
		require.True(t, ok)
		assert.Equal(t, "  text  ", v)
	})

	t.Run("present tag with empty attribute value reports ok", func(t *testing.T) {
		t.Parallel()

		v, ok := doc.First(`meta[name="empty"]`, "content")
		require.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("attribute query reads non-meta elements", func(t *testing.T) {
		t.Parallel()

		v, ok := doc.First("html[lang]", "lang")
		require.True(t, ok)
		assert.Equal(t, "en-US", v)
	})

	t.Run("no match reports not ok", func(t *testing.T) {
		t.Parallel()

		_, ok := doc.First(`meta[property="og:title"]`, "content")
		assert.False(t, ok)
	})

	t.Run("missing attribute on matched element reports not ok", func(t *testing.T) {
		t.Parallel()

		_, ok := doc.First("p", "href")
		assert.False(t, ok)
	})
}

func TestDocument_All(t *testing.T) {
	t.Parallel()

	loader := goquery.NewLoader()
	doc, err := loader.Load(`<html><head>
		<script type="application/ld+json">{"headline":"One"}</script>
		<script type="application/ld+json">{"headline":"Two"}</script>
	</head><body>
		<img src="/a.png"><img alt="no src"><img src="/b.png">
	</body></html>`)
	require.NoError(t, err)

	t.Run("returns every match in document order", func(t *testing.T) {
		t.Parallel()

		blocks := doc.All(unfurl.JSONLDQuery, "")
		require.Len(t, blocks, 2)
		assert.Contains(t, blocks[0], "One")
		assert.Contains(t, blocks[1], "Two")
	})

	t.Run("skips elements without the attribute", func(t *testing.T) {
		t.Parallel()

		srcs := doc.All("body img[src]", "src")
		assert.Equal(t, []string{"/a.png", "/b.png"}, srcs)
	})
}

func TestDocument_BaseHref(t *testing.T) {
	t.Parallel()

	loader := goquery.NewLoader()

	t.Run("returns base href when present", func(t *testing.T) {
		t.Parallel()

		doc, err := loader.Load(`<html><head><base href="https://example.com/docs/"></head></html>`)
		require.NoError(t, err)

		href, ok := doc.BaseHref()
		require.True(t, ok)
		assert.Equal(t, "https://example.com/docs/", href)
	})

	t.Run("reports absent base tag", func(t *testing.T) {
		t.Parallel()

		doc, err := loader.Load(`<html><head></head></html>`)
		require.NoError(t, err)

		_, ok := doc.BaseHref()
		assert.False(t, ok)
	})
}
