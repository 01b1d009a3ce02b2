package goldmark_test

import (
	"testing"

	"github.com/fwojciec/coursechef/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders link list", func(t *testing.T) {
		t.Parallel()

		got, err := goldmark.NewRenderer().Render("* [Plan](plan.pdf)\n* [Sheet](sheet.docx)\n")
		require.NoError(t, err)

		assert.Contains(t, got, "<ul>")
		assert.Contains(t, got, `<li><a href="plan.pdf">Plan</a></li>`)
		assert.Contains(t, got, `<li><a href="sheet.docx">Sheet</a></li>`)
	})

	t.Run("omits raw html", func(t *testing.T) {
		t.Parallel()

		got, err := goldmark.NewRenderer().Render("<script>alert(1)</script>\n")
		require.NoError(t, err)

		assert.NotContains(t, got, "<script>")
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		got, err := goldmark.NewRenderer().Render("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
