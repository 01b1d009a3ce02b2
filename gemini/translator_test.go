package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/coursechef/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_Translate_ReturnsBlankTextUnchanged(t *testing.T) {
	t.Parallel()

	translator := gemini.NewTranslator(nil, 1) // nil client ok for this test

	got, err := translator.Translate(context.Background(), "  ", "ar")

	require.NoError(t, err)
	assert.Equal(t, "  ", got)
}

func TestTranslator_Translate_StopsWhenContextCanceled(t *testing.T) {
	t.Parallel()

	translator := gemini.NewTranslator(nil, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := translator.Translate(ctx, "الإسعافات الأولية", "ar")

	require.ErrorIs(t, err, context.Canceled)
}

func TestNewTranslator_DisablesLimiterForNonPositiveRate(t *testing.T) {
	t.Parallel()

	assert.Nil(t, gemini.NewTranslator(nil, 0).Limiter)
	assert.NotNil(t, gemini.NewTranslator(nil, gemini.DefaultRPS).Limiter)
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "Translate")
}

func TestBuildConfig_SetsZeroTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0, *config.Temperature, 0.001)
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Source language: ar\n<text>المقدمة</text>", gemini.BuildUserPrompt("المقدمة", "ar"))
	assert.Equal(t, "<text>Intro</text>", gemini.BuildUserPrompt("Intro", ""))
}
