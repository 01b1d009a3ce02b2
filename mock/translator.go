package mock

import (
	"context"

	"github.com/fwojciec/coursechef"
)

var _ coursechef.Translator = (*Translator)(nil)

// Translator is a mock implementation of coursechef.Translator.
type Translator struct {
	TranslateFn func(ctx context.Context, text, sourceLang string) (string, error)
}

func (t *Translator) Translate(ctx context.Context, text, sourceLang string) (string, error) {
	return t.TranslateFn(ctx, text, sourceLang)
}
