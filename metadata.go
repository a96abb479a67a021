package unfurl

import "net/url"

// Field identifies a logical preview metadata field.
type Field string

// The closed set of preview metadata fields. Extractors never produce
// fields outside this set.
const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldImage       Field = "image"
	FieldSiteName    Field = "site_name"
	FieldAuthor      Field = "author"
	FieldURL         Field = "url"
	FieldLocale      Field = "locale"
	FieldType        Field = "type"
)

// Fields returns every metadata field in a stable order.
func Fields() []Field {
	return []Field{
		FieldTitle,
		FieldDescription,
		FieldImage,
		FieldSiteName,
		FieldAuthor,
		FieldURL,
		FieldLocale,
		FieldType,
	}
}

// Vocabulary identifies a metadata vocabulary.
type Vocabulary string

// Supported metadata vocabularies.
const (
	VocabularyOpenGraph Vocabulary = "opengraph"
	VocabularyTwitter   Vocabulary = "twitter"
	VocabularySchemaOrg Vocabulary = "schemaorg"
	VocabularyFallback  Vocabulary = "fallback"
)

// VocabularyPriority returns the fixed merge order. For each field the
// first vocabulary with a valid, normalized value wins; lower-priority
// candidates are discarded even when present.
func VocabularyPriority() []Vocabulary {
	return []Vocabulary{
		VocabularyOpenGraph,
		VocabularyTwitter,
		VocabularySchemaOrg,
		VocabularyFallback,
	}
}

// RawCandidate is a single unvalidated value produced by a field
// extractor, consumed by normalization.
type RawCandidate struct {
	Field      Field
	Vocabulary Vocabulary
	Value      string
}

// Value is a normalized metadata value together with the vocabulary that
// supplied it.
type Value struct {
	Text   string     `json:"text"`
	Source Vocabulary `json:"source"`
}

// Preview is the resolved metadata record for one page. A nil field means
// no vocabulary supplied a valid value for it. Every non-nil value passed
// normalization: text fields are non-empty after whitespace collapsing,
// and Image/URL are absolute http(s) URLs.
//
// A Preview is built exactly once per resolution and never mutated
// afterward.
type Preview struct {
	Title       *Value `json:"title,omitempty"`
	Description *Value `json:"description,omitempty"`
	Image       *Value `json:"image,omitempty"`
	SiteName    *Value `json:"siteName,omitempty"`
	Author      *Value `json:"author,omitempty"`
	URL         *Value `json:"url,omitempty"`
	Locale      *Value `json:"locale,omitempty"`
	Type        *Value `json:"type,omitempty"`
}

// Get returns the value for a field, or nil when the field is absent.
func (p *Preview) Get(f Field) *Value {
	switch f {
	case FieldTitle:
		return p.Title
	case FieldDescription:
		return p.Description
	case FieldImage:
		return p.Image
	case FieldSiteName:
		return p.SiteName
	case FieldAuthor:
		return p.Author
	case FieldURL:
		return p.URL
	case FieldLocale:
		return p.Locale
	case FieldType:
		return p.Type
	}
	return nil
}

// Set assigns the value for a field. Used by the resolver while building
// the record; callers should treat a resolved Preview as read-only.
func (p *Preview) Set(f Field, v *Value) {
	switch f {
	case FieldTitle:
		p.Title = v
	case FieldDescription:
		p.Description = v
	case FieldImage:
		p.Image = v
	case FieldSiteName:
		p.SiteName = v
	case FieldAuthor:
		p.Author = v
	case FieldURL:
		p.URL = v
	case FieldLocale:
		p.Locale = v
	case FieldType:
		p.Type = v
	}
}

// Domain returns the host of the canonical URL, or the empty string when
// no canonical URL was resolved.
func (p *Preview) Domain() string {
	if p.URL == nil {
		return ""
	}
	u, err := url.Parse(p.URL.Text)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
