// Package goquery implements HTML fragment processing using goquery.
package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/coursechef"
)

// Ensure ResourceExtractor implements coursechef.ResourceExtractor at compile time.
var _ coursechef.ResourceExtractor = (*ResourceExtractor)(nil)

// staticPrefix marks references to files shipped inside the course export.
const staticPrefix = "/static"

// ResourceExtractor finds downloadable files linked from HTML fragments.
type ResourceExtractor struct {
	locator coursechef.AssetLocator
}

// NewResourceExtractor creates a new ResourceExtractor that resolves static
// references with locator.
func NewResourceExtractor(locator coursechef.AssetLocator) *ResourceExtractor {
	return &ResourceExtractor{locator: locator}
}

// ExtractResources returns the fragment's resources. An embedded frame is
// treated as a single document and wins over any links; otherwise every
// hyperlink becomes a resource, in document order.
func (e *ResourceExtractor) ExtractResources(html, dir string) ([]coursechef.Resource, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, coursechef.Errorf(coursechef.EINVALID, "failed to parse HTML: %v", err)
	}

	resources := []coursechef.Resource{}

	if iframe := doc.Find("iframe[src]").First(); iframe.Length() > 0 {
		src, _ := iframe.Attr("src")
		if strings.TrimSpace(src) != "" {
			title, ok := iframe.Attr("title")
			if !ok {
				title = "no title"
			}
			return append(resources, e.resource(dir, src, title, iframe)), nil
		}
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || isNonHTTPLink(href) {
			return
		}
		resources = append(resources, e.resource(dir, href, strings.TrimSpace(sel.Text()), sel))
	})

	return resources, nil
}

func (e *ResourceExtractor) resource(dir, rawHref, title string, sel *goquery.Selection) coursechef.Resource {
	href := decodeHref(strings.TrimSpace(rawHref))
	linkHTML, _ := goquery.OuterHtml(sel)

	r := coursechef.Resource{
		Href:     href,
		Title:    title,
		LinkHTML: linkHTML,
	}

	if strings.HasPrefix(href, staticPrefix) {
		relPath, ok := e.locator.Locate(dir, href)
		r.RelPath = relPath
		r.Missing = !ok
		r.Filename = path.Base(href)
	} else {
		r.External = true
		r.Filename = path.Base(urlPath(href))
	}

	r.Ext = strings.ToLower(strings.TrimPrefix(path.Ext(r.Filename), "."))
	return r
}

// decodeHref undoes percent and plus encoding. Undecodable references are
// returned unchanged.
func decodeHref(href string) string {
	decoded, err := url.QueryUnescape(href)
	if err != nil {
		return href
	}
	return decoded
}

// urlPath returns the path component of an absolute or relative URL.
func urlPath(href string) string {
	u, err := url.Parse(href)
	if err != nil || u.Path == "" {
		return href
	}
	return u.Path
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
