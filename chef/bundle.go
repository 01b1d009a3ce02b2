package chef

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/coursechef"
)

// Fixed entries of every resource bundle.
const (
	indexFile = "index.html"
	styleFile = "style.css"
)

//go:embed style.css
var styleCSS []byte

var indexTemplate = template.Must(template.New(indexFile).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="` + styleFile + `">
</head>
<body>
<h1>{{.Title}}</h1>
{{.Body}}
</body>
</html>
`))

type indexPage struct {
	Title string
	Body  template.HTML
}

var linkTextEscaper = strings.NewReplacer(
	`\`, `\\`,
	`[`, `\[`,
	`]`, `\]`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`<`, `\<`,
)

// resourceBundle packages resources with an index page listing them.
// Resources are deduplicated by path, first occurrence wins. Local files are
// copied into the bundle; external links are listed by their href.
func (t *courseTransform) resourceBundle(title, sourceID string, resources []coursechef.Resource) (*coursechef.ContentNode, error) {
	seen := make(map[string]bool, len(resources))
	taken := map[string]bool{indexFile: true, styleFile: true}

	var (
		list    strings.Builder
		entries []coursechef.BundleEntry
	)
	for _, r := range resources {
		key := r.Key()
		if seen[key] {
			t.logger().Warn("skipping duplicate resource", "bundle", sourceID, "path", key)
			continue
		}
		seen[key] = true

		href := r.Href
		if !r.External {
			if r.Missing {
				t.logger().Warn("leaving missing resource out of bundle", "bundle", sourceID, "path", r.RelPath)
				continue
			}
			href = uniqueName(taken, filepath.Base(r.RelPath))
			entries = append(entries, coursechef.BundleEntry{Name: href, SourcePath: r.RelPath})
		}
		fmt.Fprintf(&list, "* [%s](<%s>)\n", linkTextEscaper.Replace(linkTitle(r)), href)
	}

	body, err := t.Renderer.Render(list.String())
	if err != nil {
		return nil, err
	}

	var page bytes.Buffer
	if err := indexTemplate.Execute(&page, indexPage{Title: title, Body: template.HTML(body)}); err != nil {
		return nil, err
	}

	entries = append(entries,
		coursechef.BundleEntry{Name: indexFile, Data: page.Bytes()},
		coursechef.BundleEntry{Name: styleFile, Data: styleCSS},
	)
	p, err := t.Bundler.WriteBundle(t.ctx, bundleName(t.courseID, sourceID), entries)
	if err != nil {
		return nil, err
	}

	node := t.newNode(coursechef.ContentHTML5, title, sourceID, "")
	node.Files = []coursechef.File{{Type: coursechef.FileHTML5, Path: p}}
	return node, nil
}

func linkTitle(r coursechef.Resource) string {
	switch {
	case r.Title != "":
		return r.Title
	case r.Filename != "":
		return r.Filename
	}
	return r.Href
}

// uniqueName returns name, or name with a numeric suffix if it is taken,
// and marks the result as taken.
func uniqueName(taken map[string]bool, name string) string {
	candidate := name
	ext := path.Ext(name)
	for i := 2; taken[candidate]; i++ {
		candidate = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), i, ext)
	}
	taken[candidate] = true
	return candidate
}
