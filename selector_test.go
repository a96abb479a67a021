package unfurl_test

import (
	"testing"

	"github.com/fwojciec/unfurl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorSet_ForVocabulary(t *testing.T) {
	t.Parallel()

	set := unfurl.SelectorSet{
		{Vocabulary: unfurl.VocabularyOpenGraph, Field: unfurl.FieldTitle, Query: "a", Attr: "content"},
		{Vocabulary: unfurl.VocabularyTwitter, Field: unfurl.FieldTitle, Query: "b", Attr: "content"},
		{Vocabulary: unfurl.VocabularyOpenGraph, Field: unfurl.FieldImage, Query: "c", Attr: "content"},
	}

	rows := set.ForVocabulary(unfurl.VocabularyOpenGraph)

	require.Len(t, rows, 2)
	assert.Equal(t, unfurl.FieldTitle, rows[0].Field)
	assert.Equal(t, unfurl.FieldImage, rows[1].Field)
}

func TestDefaultSelectorSet(t *testing.T) {
	t.Parallel()

	set := unfurl.DefaultSelectorSet()

	t.Run("covers every vocabulary", func(t *testing.T) {
		t.Parallel()

		for _, v := range unfurl.VocabularyPriority() {
			assert.NotEmpty(t, set.ForVocabulary(v), "vocabulary %s", v)
		}
	})

	t.Run("core fields have a row in every structured vocabulary", func(t *testing.T) {
		t.Parallel()

		for _, v := range []unfurl.Vocabulary{unfurl.VocabularyOpenGraph, unfurl.VocabularyTwitter, unfurl.VocabularySchemaOrg} {
			fields := make(map[unfurl.Field]bool)
			for _, row := range set.ForVocabulary(v) {
				fields[row.Field] = true
			}
			assert.True(t, fields[unfurl.FieldTitle], "%s title", v)
			assert.True(t, fields[unfurl.FieldDescription], "%s description", v)
			assert.True(t, fields[unfurl.FieldImage], "%s image", v)
		}
	})

	t.Run("fallback title reads element text", func(t *testing.T) {
		t.Parallel()

		for _, row := range set.ForVocabulary(unfurl.VocabularyFallback) {
			if row.Field == unfurl.FieldTitle {
				assert.Equal(t, "title", row.Query)
				assert.Empty(t, row.Attr)
				return
			}
		}
		t.Fatal("fallback title row missing")
	})

	t.Run("fallback rows keep their last-resort order", func(t *testing.T) {
		t.Parallel()

		queries := func(f unfurl.Field) []string {
			var qs []string
			for _, row := range set.ForVocabulary(unfurl.VocabularyFallback) {
				if row.Field == f {
					qs = append(qs, row.Query)
				}
			}
			return qs
		}

		assert.Equal(t, []string{"title", "h1", "h2"}, queries(unfurl.FieldTitle))
		assert.Equal(t, []string{`meta[name="description"]`, "p"}, queries(unfurl.FieldDescription))
		assert.Equal(t, []string{`link[rel="image_src"]`, "body img[src]"}, queries(unfurl.FieldImage))
	})
}
