// Package slog provides logging decorators for coursechef services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/coursechef"
)

// Ensure LoggingResolver implements coursechef.FragmentResolver.
var _ coursechef.FragmentResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a FragmentResolver with debug logging. A course has
// hundreds of fragments, so records are emitted at debug level.
type LoggingResolver struct {
	next   coursechef.FragmentResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next coursechef.FragmentResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the operation.
func (r *LoggingResolver) Resolve(dir, kind, id string) (node *coursechef.Node, err error) {
	defer func(begin time.Time) {
		refs := 0
		if node != nil {
			refs = len(node.Refs)
		}
		r.logger.Debug("resolve",
			"kind", kind,
			"id", id,
			"refs", refs,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(dir, kind, id)
}

// ReadLeaf delegates to the wrapped resolver and logs the operation.
func (r *LoggingResolver) ReadLeaf(dir, kind, id, ext string) (content string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("read leaf",
			"kind", kind,
			"id", id,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadLeaf(dir, kind, id, ext)
}
