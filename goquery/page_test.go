package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/coursechef/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageBuilder_StandalonePage(t *testing.T) {
	t.Parallel()

	t.Run("injects utf-8 charset into fragment", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewPageBuilder().StandalonePage(`<p>مرحبا</p>`)

		require.NoError(t, err)
		assert.Contains(t, page, `<head><meta charset="utf-8"/>`)
		assert.Contains(t, page, "<body><p>مرحبا</p></body>")
	})

	t.Run("keeps existing charset declaration", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewPageBuilder().StandalonePage(`<html><head><meta charset="windows-1256"></head><body>x</body></html>`)

		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(page, "charset"))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		a, err := goquery.NewPageBuilder().StandalonePage(`<div>x</div>`)
		require.NoError(t, err)
		b, err := goquery.NewPageBuilder().StandalonePage(`<div>x</div>`)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})
}
