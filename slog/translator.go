package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/coursechef"
)

// Ensure LoggingTranslator implements coursechef.Translator.
var _ coursechef.Translator = (*LoggingTranslator)(nil)

// LoggingTranslator wraps a Translator with logging.
type LoggingTranslator struct {
	next   coursechef.Translator
	logger *slog.Logger
}

// NewLoggingTranslator creates a new LoggingTranslator.
func NewLoggingTranslator(next coursechef.Translator, logger *slog.Logger) *LoggingTranslator {
	return &LoggingTranslator{next: next, logger: logger}
}

// Translate delegates to the wrapped translator and logs the operation.
func (t *LoggingTranslator) Translate(ctx context.Context, text, sourceLang string) (translated string, err error) {
	defer func(begin time.Time) {
		t.logger.Info("translate",
			"lang", sourceLang,
			"chars", len([]rune(text)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Translate(ctx, text, sourceLang)
}
