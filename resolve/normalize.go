package resolve

import (
	"net/url"
	"strings"

	"github.com/fwojciec/unfurl"
)

// normalize validates and cleans a raw candidate value for its field.
// ok is false when the candidate must be dropped. Dropping is routine:
// real-world pages implement these vocabularies inconsistently.
func normalize(c unfurl.RawCandidate, base *url.URL) (string, bool) {
	switch c.Field {
	case unfurl.FieldImage, unfurl.FieldURL:
		return normalizeURL(c.Value, base)
	case unfurl.FieldLocale:
		// Locale formats vary too much in the wild to validate; tolerate
		// anything non-empty.
		v := strings.TrimSpace(c.Value)
		return v, v != ""
	default:
		return normalizeText(c.Value)
	}
}

// normalizeText collapses internal whitespace runs to single spaces and
// trims the result. Empty-after-trim values are invalid. HTML entities
// were already decoded at parse time by the loader.
func normalizeText(s string) (string, bool) {
	v := strings.Join(strings.Fields(s), " ")
	return v, v != ""
}

// normalizeURL resolves raw against base when relative and validates the
// result. Only absolute http(s) URLs with a host survive; relative values
// without a base are dropped rather than guessed. Validation is purely
// syntactic and never fetches the target.
func normalizeURL(raw string, base *url.URL) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, " \t\n") {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if !u.IsAbs() {
		if base == nil {
			return "", false
		}
		u = base.ResolveReference(u)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host == "" {
		return "", false
	}

	return u.String(), true
}
