package cache

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/coursechef"
)

// Ensure Translator implements coursechef.Translator at compile time.
var _ coursechef.Translator = (*Translator)(nil)

// Translator memoizes a coursechef.Translator. Cache failures are logged
// and the call goes through to the wrapped translator uncached.
type Translator struct {
	Translator coursechef.Translator
	Cache      coursechef.Cache
	Logger     *slog.Logger
}

// Translate returns the cached translation of text, calling the wrapped
// translator on a miss.
func (t *Translator) Translate(ctx context.Context, text, sourceLang string) (string, error) {
	key := Key("translate", sourceLang, text)

	value, ok, err := t.Cache.Get(ctx, key)
	if err != nil {
		t.logger().Warn("cache read failed", "key", key, "error", err)
	} else if ok {
		return string(value), nil
	}

	translated, err := t.Translator.Translate(ctx, text, sourceLang)
	if err != nil {
		return "", err
	}

	if err := t.Cache.Put(ctx, key, []byte(translated)); err != nil {
		t.logger().Warn("cache write failed", "key", key, "error", err)
	}
	return translated, nil
}

func (t *Translator) logger() *slog.Logger {
	if t.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return t.Logger
}

// Key derives a cache key from call arguments.
func Key(parts ...string) string {
	d := xxhash.New()
	for _, p := range parts {
		_, _ = d.WriteString(p)
		_, _ = d.Write([]byte{0})
	}
	return fmt.Sprintf("%x", d.Sum64())
}
