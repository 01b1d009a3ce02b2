package coursechef

import "context"

// Translator translates text to English. Used only for debug tree printing.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang string) (string, error)
}
