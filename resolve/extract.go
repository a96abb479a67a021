package resolve

import (
	"encoding/json"

	"github.com/fwojciec/unfurl"
)

// extractor produces the raw candidates one vocabulary has for a document.
// Extractors are field-set pure: they never suppress values because another
// vocabulary also has them. Priority is the resolver's job.
type extractor interface {
	Vocabulary() unfurl.Vocabulary
	Extract(doc unfurl.Document) map[unfurl.Field]unfurl.RawCandidate
}

// selectorExtractor reads its vocabulary's selector rows in table order.
// The first document-order match per field is authoritative; fields without
// a match stay absent from the returned map, so absence is distinguishable
// from found-but-invalid.
type selectorExtractor struct {
	vocabulary unfurl.Vocabulary
	selectors  []unfurl.Selector
}

func newSelectorExtractor(v unfurl.Vocabulary, set unfurl.SelectorSet) *selectorExtractor {
	return &selectorExtractor{vocabulary: v, selectors: set.ForVocabulary(v)}
}

func (e *selectorExtractor) Vocabulary() unfurl.Vocabulary {
	return e.vocabulary
}

func (e *selectorExtractor) Extract(doc unfurl.Document) map[unfurl.Field]unfurl.RawCandidate {
	found := make(map[unfurl.Field]unfurl.RawCandidate)
	for _, sel := range e.selectors {
		if _, ok := found[sel.Field]; ok {
			continue
		}
		value, ok := doc.First(sel.Query, sel.Attr)
		if !ok {
			continue
		}
		found[sel.Field] = unfurl.RawCandidate{
			Field:      sel.Field,
			Vocabulary: e.vocabulary,
			Value:      value,
		}
	}
	return found
}

// schemaExtractor reads the Schema.org itemprop rows and fills fields the
// metas left absent from embedded JSON-LD blocks. Only a small fixed key
// set is read; there is no @context/@type graph traversal.
type schemaExtractor struct {
	*selectorExtractor
}

func newSchemaExtractor(set unfurl.SelectorSet) *schemaExtractor {
	return &schemaExtractor{newSelectorExtractor(unfurl.VocabularySchemaOrg, set)}
}

func (e *schemaExtractor) Extract(doc unfurl.Document) map[unfurl.Field]unfurl.RawCandidate {
	found := e.selectorExtractor.Extract(doc)

	for _, block := range doc.All(unfurl.JSONLDQuery, "") {
		obj, ok := decodeJSONLD(block)
		if !ok {
			// Malformed blocks are skipped per-block, not fatal.
			continue
		}
		e.fill(found, unfurl.FieldTitle, jsonldString(obj["headline"]))
		e.fill(found, unfurl.FieldDescription, jsonldString(obj["description"]))
		e.fill(found, unfurl.FieldImage, jsonldImage(obj["image"]))
		e.fill(found, unfurl.FieldAuthor, jsonldAuthor(obj["author"]))
		e.fill(found, unfurl.FieldType, jsonldString(obj["@type"]))
	}

	return found
}

// fill records a JSON-LD value for a field unless an itemprop meta or an
// earlier block already supplied one.
func (e *schemaExtractor) fill(found map[unfurl.Field]unfurl.RawCandidate, f unfurl.Field, value string) {
	if value == "" {
		return
	}
	if _, ok := found[f]; ok {
		return
	}
	found[f] = unfurl.RawCandidate{
		Field:      f,
		Vocabulary: unfurl.VocabularySchemaOrg,
		Value:      value,
	}
}

// decodeJSONLD shallow-parses one script block as a key-value object.
// A top-level array is accepted; its first object is used.
func decodeJSONLD(block string) (map[string]any, bool) {
	var raw any
	if err := json.Unmarshal([]byte(block), &raw); err != nil {
		return nil, false
	}
	switch v := raw.(type) {
	case map[string]any:
		return v, true
	case []any:
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok {
				return obj, true
			}
		}
	}
	return nil, false
}

func jsonldString(v any) string {
	s, _ := v.(string)
	return s
}

// jsonldImage accepts a plain string, the first element of an array, or an
// ImageObject with a url key.
func jsonldImage(v any) string {
	switch img := v.(type) {
	case string:
		return img
	case []any:
		if len(img) > 0 {
			return jsonldImage(img[0])
		}
	case map[string]any:
		return jsonldString(img["url"])
	}
	return ""
}

// jsonldAuthor accepts a plain string, a Person object with a name key, or
// the first element of an array of either.
func jsonldAuthor(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case map[string]any:
		return jsonldString(a["name"])
	case []any:
		if len(a) > 0 {
			return jsonldAuthor(a[0])
		}
	}
	return ""
}
