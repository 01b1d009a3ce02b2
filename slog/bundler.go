package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/coursechef"
)

// Ensure LoggingBundler implements coursechef.Bundler.
var _ coursechef.Bundler = (*LoggingBundler)(nil)

// LoggingBundler wraps a Bundler with logging.
type LoggingBundler struct {
	next   coursechef.Bundler
	logger *slog.Logger
}

// NewLoggingBundler creates a new LoggingBundler.
func NewLoggingBundler(next coursechef.Bundler, logger *slog.Logger) *LoggingBundler {
	return &LoggingBundler{next: next, logger: logger}
}

// WriteBundle delegates to the wrapped bundler and logs the operation.
func (b *LoggingBundler) WriteBundle(ctx context.Context, name string, entries []coursechef.BundleEntry) (path string, err error) {
	defer func(begin time.Time) {
		b.logger.Info("bundle",
			"name", name,
			"entries", len(entries),
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.WriteBundle(ctx, name, entries)
}
