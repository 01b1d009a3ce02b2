package coursechef

import (
	"fmt"
	"sort"
	"strings"
)

// TitleFunc rewrites a title before it is printed. A nil TitleFunc leaves
// titles unchanged.
type TitleFunc func(title string) string

// FormatTree renders a source tree as an indented outline for debugging.
func FormatTree(root *Node, title TitleFunc) string {
	var b strings.Builder
	formatNode(&b, root, title, 0)
	return b.String()
}

func formatNode(b *strings.Builder, n *Node, title TitleFunc, depth int) {
	t := n.Title()
	if title != nil && t != "" {
		t = title(t)
	}

	var extra []string
	if n.Kind == KindWiki {
		extra = append(extra, "slug="+n.ID)
	} else if n.YoutubeID == "" && n.Path == "" {
		extra = append(extra, "url_name="+n.ID)
	}
	if n.Kind == KindCourse {
		extra = append(extra, "attrs="+formatAttrs(n.Attrs))
	}
	for _, f := range []struct{ key, value string }{
		{"description", n.Description},
		{"youtube_id", n.YoutubeID},
		{"path", n.Path},
		{"text", n.Text},
	} {
		if f.value != "" {
			extra = append(extra, f.key+"="+f.value)
		}
	}

	fmt.Fprintf(b, "%s- %s kind=%s\t %s\n", strings.Repeat("   ", depth), t, n.Kind, strings.Join(extra, " "))
	for _, r := range n.Resources {
		fmt.Fprintf(b, "%s  > resource: %s\n", strings.Repeat("   ", depth+1), r.Key())
	}
	for _, child := range n.Children {
		formatNode(b, child, title, depth+1)
	}
}

// formatAttrs renders attributes sorted by key, skipping bulky ones.
func formatAttrs(attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k == "certificates" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + attrs[k]
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FormatContentTree renders a target tree as an indented outline.
func FormatContentTree(root *ContentNode, title TitleFunc) string {
	var b strings.Builder
	formatContentNode(&b, root, title, 0)
	return b.String()
}

func formatContentNode(b *strings.Builder, n *ContentNode, title TitleFunc, depth int) {
	t := n.Title
	if title != nil && t != "" {
		t = title(t)
	}
	fmt.Fprintf(b, "%s- %s kind=%s\n", strings.Repeat("   ", depth), t, n.Kind)
	for _, child := range n.Children {
		formatContentNode(b, child, title, depth+1)
	}
}
