// Package gemini implements title translation using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/coursechef"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// DefaultRPS keeps the free tier's per-minute quota.
const DefaultRPS = 0.25

// Ensure Translator implements coursechef.Translator at compile time.
var _ coursechef.Translator = (*Translator)(nil)

// Translator implements coursechef.Translator using Google Gemini.
// Requests are paced by Limiter when it is set.
type Translator struct {
	client  *genai.Client
	Limiter *rate.Limiter
}

// NewTranslator creates a new Translator limited to rps requests per second.
// A non-positive rps disables limiting.
func NewTranslator(client *genai.Client, rps float64) *Translator {
	t := &Translator{client: client}
	if rps > 0 {
		t.Limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return t
}

// Translate returns text translated to English. Blank text is returned as is.
func (t *Translator) Translate(ctx context.Context, text, sourceLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	if t.Limiter != nil {
		if err := t.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	result, err := t.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(text, sourceLang)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", coursechef.Errorf(coursechef.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a translator. Translate the given course title to English. Reply with the translation only, on one line, without quotes or commentary.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt for one title.
func BuildUserPrompt(text, sourceLang string) string {
	var sb strings.Builder
	if sourceLang != "" {
		fmt.Fprintf(&sb, "Source language: %s\n", sourceLang)
	}
	fmt.Fprintf(&sb, "<text>%s</text>", text)
	return sb.String()
}
