// Package resolve implements the metadata resolution engine: the four
// vocabulary extractors fan out over a parsed document, every candidate is
// normalized as extracted, and a deterministic priority merge produces the
// final preview record.
package resolve

import (
	"net/url"
	"strings"

	"github.com/fwojciec/unfurl"
	"golang.org/x/sync/errgroup"
)

// Ensure Engine implements unfurl.Resolver at compile time.
var _ unfurl.Resolver = (*Engine)(nil)

// Engine resolves preview metadata from HTML text. It performs no I/O and
// is safe for concurrent use.
type Engine struct {
	loader    unfurl.Loader
	selectors unfurl.SelectorSet
	profiles  []unfurl.Profile
	onDrop    func(unfurl.RawCandidate)
}

// Option configures an Engine.
type Option func(*Engine)

// WithSelectors overrides the default selector table.
func WithSelectors(set unfurl.SelectorSet) Option {
	return func(e *Engine) {
		e.selectors = set
	}
}

// WithProfiles registers site profiles, checked in order against the
// resolved page URL after the merge. The first fitting profile applies.
func WithProfiles(profiles ...unfurl.Profile) Option {
	return func(e *Engine) {
		e.profiles = append(e.profiles, profiles...)
	}
}

// WithDropObserver registers a hook invoked for every candidate dropped at
// normalization. Dropped candidates are otherwise silent; the hook exists
// for diagnostics and tests. The hook is called from the goroutine running
// Resolve, never concurrently.
func WithDropObserver(fn func(unfurl.RawCandidate)) Option {
	return func(e *Engine) {
		e.onDrop = fn
	}
}

// NewEngine creates an Engine using the given loader and the default
// selector table.
func NewEngine(loader unfurl.Loader, opts ...Option) *Engine {
	e := &Engine{
		loader:    loader,
		selectors: unfurl.DefaultSelectorSet(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve parses html, runs the four vocabulary extractors, normalizes
// their candidates, and merges them under the fixed vocabulary priority.
// base is used only to resolve relative URL candidates; when nil, relative
// candidates are dropped. The only failure mode is EUNPARSABLE from the
// loader.
func (e *Engine) Resolve(html string, base *url.URL) (*unfurl.Preview, error) {
	doc, err := e.loader.Load(html)
	if err != nil {
		return nil, err
	}

	base = resolutionBase(doc, base)

	extractors := []extractor{
		newSelectorExtractor(unfurl.VocabularyOpenGraph, e.selectors),
		newSelectorExtractor(unfurl.VocabularyTwitter, e.selectors),
		newSchemaExtractor(e.selectors),
		newSelectorExtractor(unfurl.VocabularyFallback, e.selectors),
	}

	// Extractors share only the read-only document, so they run
	// concurrently. Each writes its own slot and the merge below considers
	// complete maps, so the result is identical to sequential execution.
	normalized := make([]map[unfurl.Field]unfurl.Value, len(extractors))
	dropped := make([][]unfurl.RawCandidate, len(extractors))
	var g errgroup.Group
	for i, ex := range extractors {
		g.Go(func() error {
			normalized[i], dropped[i] = e.normalizeAll(ex.Extract(doc), base)
			return nil
		})
	}
	_ = g.Wait() // extraction does not fail

	// The observer runs here, after the fan-out joins, so it never sees
	// concurrent calls.
	if e.onDrop != nil {
		for _, drops := range dropped {
			for _, c := range drops {
				e.onDrop(c)
			}
		}
	}

	byVocabulary := make(map[unfurl.Vocabulary]map[unfurl.Field]unfurl.Value, len(extractors))
	for i, ex := range extractors {
		byVocabulary[ex.Vocabulary()] = normalized[i]
	}

	p := &unfurl.Preview{}
	for _, f := range unfurl.Fields() {
		for _, v := range unfurl.VocabularyPriority() {
			if value, ok := byVocabulary[v][f]; ok {
				p.Set(f, &value)
				break
			}
		}
	}

	return e.applyProfile(p, base), nil
}

// normalizeAll normalizes one extractor's candidates, returning the valid
// values and the candidates that were dropped.
func (e *Engine) normalizeAll(candidates map[unfurl.Field]unfurl.RawCandidate, base *url.URL) (map[unfurl.Field]unfurl.Value, []unfurl.RawCandidate) {
	values := make(map[unfurl.Field]unfurl.Value, len(candidates))
	var dropped []unfurl.RawCandidate
	for f, c := range candidates {
		text, ok := normalize(c, base)
		if !ok {
			dropped = append(dropped, c)
			continue
		}
		values[f] = unfurl.Value{Text: text, Source: c.Vocabulary}
	}
	return values, dropped
}

// applyProfile applies the first profile fitting the page URL, preferring
// the resolved canonical URL over the caller-supplied base.
func (e *Engine) applyProfile(p *unfurl.Preview, base *url.URL) *unfurl.Preview {
	if len(e.profiles) == 0 {
		return p
	}
	u := pageURL(p, base)
	if u == nil {
		return p
	}
	for _, profile := range e.profiles {
		if profile.Fits(u) {
			return profile.Apply(p)
		}
	}
	return p
}

func pageURL(p *unfurl.Preview, base *url.URL) *url.URL {
	if v := p.Get(unfurl.FieldURL); v != nil {
		if u, err := url.Parse(v.Text); err == nil {
			return u
		}
	}
	return base
}

// resolutionBase derives the base for relative URL candidates: a
// <base href> tag wins, itself resolved against the caller base when
// relative; otherwise the caller base applies unchanged.
func resolutionBase(doc unfurl.Document, base *url.URL) *url.URL {
	href, ok := doc.BaseHref()
	if !ok {
		return base
	}
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return base
	}
	if u.IsAbs() {
		return u
	}
	if base == nil {
		// A relative base href is unusable without an origin.
		return nil
	}
	return base.ResolveReference(u)
}
