package mock

import "github.com/fwojciec/coursechef"

var _ coursechef.Converter = (*Converter)(nil)

// Converter is a mock implementation of coursechef.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ coursechef.MarkdownRenderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer is a mock implementation of coursechef.MarkdownRenderer.
type MarkdownRenderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *MarkdownRenderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
