package coursechef

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// MarkdownRenderer renders Markdown to HTML.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}
