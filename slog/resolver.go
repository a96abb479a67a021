// Package slog provides logging decorators for unfurl services.
package slog

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/unfurl"
)

// Ensure LoggingResolver implements unfurl.Resolver.
var _ unfurl.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with operational logging.
type LoggingResolver struct {
	next   unfurl.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next unfurl.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(html string, base *url.URL) (p *unfurl.Preview, err error) {
	defer func(begin time.Time) {
		r.logger.Info("metadata resolution",
			"bytes", len(html),
			"fields", fieldCount(p),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(html, base)
}

func fieldCount(p *unfurl.Preview) int {
	if p == nil {
		return 0
	}
	n := 0
	for _, f := range unfurl.Fields() {
		if p.Get(f) != nil {
			n++
		}
	}
	return n
}
