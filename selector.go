package unfurl

// Selector maps one vocabulary field to the document query that reads it.
type Selector struct {
	Vocabulary Vocabulary
	Field      Field
	Query      string // CSS selector
	Attr       string // attribute to read; empty reads the element's text
}

// SelectorSet is the static configuration table driving the field
// extractors. Extending vocabulary coverage means adding rows here, never
// touching extractor logic.
type SelectorSet []Selector

// ForVocabulary returns the rows for one vocabulary, preserving table order.
func (s SelectorSet) ForVocabulary(v Vocabulary) []Selector {
	var rows []Selector
	for _, row := range s {
		if row.Vocabulary == v {
			rows = append(rows, row)
		}
	}
	return rows
}

// JSONLDQuery matches embedded JSON-LD blocks. The Schema.org extractor
// scans these in addition to its selector rows.
const JSONLDQuery = `script[type="application/ld+json"]`

// DefaultSelectorSet returns the standard selector table.
func DefaultSelectorSet() SelectorSet {
	return SelectorSet{
		// OpenGraph
		{VocabularyOpenGraph, FieldTitle, `meta[property="og:title"]`, "content"},
		{VocabularyOpenGraph, FieldDescription, `meta[property="og:description"]`, "content"},
		{VocabularyOpenGraph, FieldImage, `meta[property="og:image"]`, "content"},
		{VocabularyOpenGraph, FieldSiteName, `meta[property="og:site_name"]`, "content"},
		{VocabularyOpenGraph, FieldAuthor, `meta[property="article:author"]`, "content"},
		{VocabularyOpenGraph, FieldURL, `meta[property="og:url"]`, "content"},
		{VocabularyOpenGraph, FieldLocale, `meta[property="og:locale"]`, "content"},
		{VocabularyOpenGraph, FieldType, `meta[property="og:type"]`, "content"},

		// Twitter Card
		{VocabularyTwitter, FieldTitle, `meta[name="twitter:title"]`, "content"},
		{VocabularyTwitter, FieldDescription, `meta[name="twitter:description"]`, "content"},
		{VocabularyTwitter, FieldImage, `meta[name="twitter:image"]`, "content"},
		{VocabularyTwitter, FieldAuthor, `meta[name="twitter:creator"]`, "content"},

		// Schema.org itemprop metas. Embedded JSON-LD is scanned separately
		// by the Schema.org extractor via JSONLDQuery.
		{VocabularySchemaOrg, FieldTitle, `meta[itemprop="name"]`, "content"},
		{VocabularySchemaOrg, FieldDescription, `meta[itemprop="description"]`, "content"},
		{VocabularySchemaOrg, FieldImage, `meta[itemprop="image"]`, "content"},
		{VocabularySchemaOrg, FieldAuthor, `meta[itemprop="author"]`, "content"},

		// Generic fallbacks. Rows for the same field are tried in table
		// order; the first match wins.
		{VocabularyFallback, FieldTitle, `title`, ""},
		{VocabularyFallback, FieldTitle, `h1`, ""},
		{VocabularyFallback, FieldTitle, `h2`, ""},
		{VocabularyFallback, FieldDescription, `meta[name="description"]`, "content"},
		{VocabularyFallback, FieldDescription, `p`, ""},
		{VocabularyFallback, FieldImage, `link[rel="image_src"]`, "href"},
		{VocabularyFallback, FieldImage, `body img[src]`, "src"},
		{VocabularyFallback, FieldSiteName, `meta[name="application-name"]`, "content"},
		{VocabularyFallback, FieldAuthor, `meta[name="author"]`, "content"},
		{VocabularyFallback, FieldURL, `link[rel="canonical"]`, "href"},
		{VocabularyFallback, FieldLocale, `html[lang]`, "lang"},
	}
}
