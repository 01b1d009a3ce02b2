// Package goldmark renders markdown to HTML.
package goldmark

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/coursechef"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Ensure Renderer implements coursechef.MarkdownRenderer at compile time.
var _ coursechef.MarkdownRenderer = (*Renderer)(nil)

// Renderer renders markdown with GitHub-flavored extensions. Raw HTML in the
// input is omitted from the output.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render converts markdown to an HTML fragment.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}
