package unfurl

import "strings"

// FormatPreview renders a preview for terminal display. Fields appear in
// the stable field order with their winning vocabulary; absent fields are
// omitted. An all-absent preview renders as the empty string.
func FormatPreview(p *Preview) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	for _, f := range Fields() {
		v := p.Get(f)
		if v == nil {
			continue
		}
		b.WriteString(string(f))
		b.WriteString(": ")
		b.WriteString(v.Text)
		b.WriteString(" [")
		b.WriteString(string(v.Source))
		b.WriteString("]\n")
	}

	return b.String()
}
