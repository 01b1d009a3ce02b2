package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/coursechef"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure PageBuilder implements coursechef.PageBuilder at compile time.
var _ coursechef.PageBuilder = (*PageBuilder)(nil)

// PageBuilder wraps HTML fragments into standalone documents.
type PageBuilder struct{}

// NewPageBuilder creates a new PageBuilder.
func NewPageBuilder() *PageBuilder {
	return &PageBuilder{}
}

// StandalonePage parses the fragment into a full document and declares
// its encoding as UTF-8 unless a charset is already declared.
func (b *PageBuilder) StandalonePage(fragment string) (string, error) {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", coursechef.Errorf(coursechef.EINVALID, "failed to parse HTML: %v", err)
	}

	doc := goquery.NewDocumentFromNode(root)
	head := doc.Find("head")
	if head.Find("meta[charset]").Length() == 0 {
		head.PrependNodes(&html.Node{
			Type:     html.ElementNode,
			Data:     "meta",
			DataAtom: atom.Meta,
			Attr:     []html.Attribute{{Key: "charset", Val: "utf-8"}},
		})
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}
