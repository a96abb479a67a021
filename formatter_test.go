package unfurl_test

import (
	"testing"

	"github.com/fwojciec/unfurl"
	"github.com/stretchr/testify/assert"
)

func TestFormatPreview(t *testing.T) {
	t.Parallel()

	t.Run("renders present fields in stable order", func(t *testing.T) {
		t.Parallel()

		p := &unfurl.Preview{
			Title: &unfurl.Value{Text: "Go", Source: unfurl.VocabularyOpenGraph},
			Image: &unfurl.Value{Text: "https://example.com/go.png", Source: unfurl.VocabularyTwitter},
		}

		got := unfurl.FormatPreview(p)

		assert.Equal(t, "title: Go [opengraph]\nimage: https://example.com/go.png [twitter]\n", got)
	})

	t.Run("empty preview renders as empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, unfurl.FormatPreview(&unfurl.Preview{}))
	})

	t.Run("nil preview renders as empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, unfurl.FormatPreview(nil))
	})
}
