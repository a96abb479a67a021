package unfurl_test

import (
	"testing"

	"github.com/fwojciec/unfurl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview_Get(t *testing.T) {
	t.Parallel()

	p := &unfurl.Preview{
		Title: &unfurl.Value{Text: "A Title", Source: unfurl.VocabularyOpenGraph},
		Image: &unfurl.Value{Text: "https://example.com/a.png", Source: unfurl.VocabularyTwitter},
	}

	title := p.Get(unfurl.FieldTitle)
	require.NotNil(t, title)
	assert.Equal(t, "A Title", title.Text)
	assert.Equal(t, unfurl.VocabularyOpenGraph, title.Source)

	assert.Nil(t, p.Get(unfurl.FieldDescription))
	assert.Nil(t, p.Get(unfurl.Field("bogus")))
}

func TestPreview_Set(t *testing.T) {
	t.Parallel()

	p := &unfurl.Preview{}
	for _, f := range unfurl.Fields() {
		p.Set(f, &unfurl.Value{Text: string(f), Source: unfurl.VocabularyFallback})
	}

	for _, f := range unfurl.Fields() {
		v := p.Get(f)
		require.NotNil(t, v, "field %s", f)
		assert.Equal(t, string(f), v.Text)
	}
}

func TestPreview_Domain(t *testing.T) {
	t.Parallel()

	t.Run("returns host of canonical URL", func(t *testing.T) {
		t.Parallel()

		p := &unfurl.Preview{
			URL: &unfurl.Value{Text: "https://en.wikipedia.org/wiki/Go", Source: unfurl.VocabularyOpenGraph},
		}

		assert.Equal(t, "en.wikipedia.org", p.Domain())
	})

	t.Run("returns empty string when URL absent", func(t *testing.T) {
		t.Parallel()

		p := &unfurl.Preview{}

		assert.Empty(t, p.Domain())
	})
}

func TestVocabularyPriority(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []unfurl.Vocabulary{
		unfurl.VocabularyOpenGraph,
		unfurl.VocabularyTwitter,
		unfurl.VocabularySchemaOrg,
		unfurl.VocabularyFallback,
	}, unfurl.VocabularyPriority())
}
