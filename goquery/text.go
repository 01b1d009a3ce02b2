package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/coursechef"
)

// Ensure TextExtractor implements coursechef.TextExtractor at compile time.
var _ coursechef.TextExtractor = (*TextExtractor)(nil)

// TextExtractor extracts a plain text paragraph from an HTML fragment.
type TextExtractor struct {
	converter coursechef.Converter
	vocab     *coursechef.Vocabulary
}

// NewTextExtractor creates a new TextExtractor. Decorative icons listed in
// vocab are removed before conversion.
func NewTextExtractor(converter coursechef.Converter, vocab *coursechef.Vocabulary) *TextExtractor {
	return &TextExtractor{converter: converter, vocab: vocab}
}

// ExtractText strips scripts, styles and icons from the fragment body,
// converts it to markdown and flattens the result with coursechef.CleanText.
func (e *TextExtractor) ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", coursechef.Errorf(coursechef.EINVALID, "failed to parse HTML: %v", err)
	}

	body := doc.Find("body")
	body.Find("script, style, noscript").Remove()
	body.Find("img").Each(func(_ int, img *goquery.Selection) {
		if src, _ := img.Attr("src"); e.vocab.IsDropIcon(src) {
			img.Remove()
		}
	})

	inner, err := body.Html()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(body.Text()) == "" {
		return "", nil
	}

	markdown, err := e.converter.Convert(inner)
	if err != nil {
		return "", err
	}
	return coursechef.CleanText(markdown), nil
}
