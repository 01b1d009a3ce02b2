// Package chef converts staged course exports into content trees.
// It coordinates fragment resolution, pruning, transformation and
// bundling, one course at a time or as a batch.
package chef

import (
	"io"
	"log/slog"

	"github.com/fwojciec/coursechef"
)

// DefaultMaxDepth bounds reference nesting. Real exports nest about six
// levels deep.
const DefaultMaxDepth = 32

// Root reference of every course export.
const (
	RootKind = coursechef.KindCourse
	RootID   = "course"
)

// Builder resolves a course export into a single tree.
type Builder struct {
	Resolver coursechef.FragmentResolver
	MaxDepth int
	Logger   *slog.Logger
}

// Build resolves {dir}/course/course.xml recursively and merges the
// attributes of the flat {dir}/course.xml into the root. Flat attributes
// win on conflict. Any resolution error aborts the build unchanged.
func (b *Builder) Build(dir string) (*coursechef.Node, error) {
	root, err := b.resolve(dir, coursechef.Ref{Kind: RootKind, ID: RootID}, make(map[coursechef.Ref]bool), 0)
	if err != nil {
		return nil, err
	}

	flat, err := b.Resolver.Resolve(dir, "", RootID)
	if err != nil {
		return nil, err
	}
	if root.Attrs == nil {
		root.Attrs = make(map[string]string, len(flat.Attrs))
	}
	for k, v := range flat.Attrs {
		root.Attrs[k] = v
	}

	return root, nil
}

// resolve loads ref and its subtree. onPath holds the refs between the root
// and ref, so a ref that reappears below itself is reported as a cycle.
func (b *Builder) resolve(dir string, ref coursechef.Ref, onPath map[coursechef.Ref]bool, depth int) (*coursechef.Node, error) {
	if depth > b.maxDepth() {
		return nil, coursechef.Errorf(coursechef.EMALFORMED, "reference depth exceeds %d at %s/%s", b.maxDepth(), ref.Kind, ref.ID)
	}
	if onPath[ref] {
		return nil, coursechef.Errorf(coursechef.EMALFORMED, "reference cycle at %s/%s", ref.Kind, ref.ID)
	}
	onPath[ref] = true
	defer delete(onPath, ref)

	node, err := b.Resolver.Resolve(dir, ref.Kind, ref.ID)
	if err != nil {
		return nil, err
	}

	children := make([]*coursechef.Node, 0, len(node.Refs))
	for _, child := range node.Refs {
		var resolved *coursechef.Node
		switch child.Kind {
		case coursechef.KindHTML:
			resolved, err = b.leaf(dir, child, "html")
		case coursechef.KindVideo, coursechef.KindProblem:
			resolved, err = b.leaf(dir, child, "xml")
		case coursechef.KindWiki:
			resolved = &coursechef.Node{
				Kind:       child.Kind,
				ID:         child.ID,
				Attrs:      map[string]string{coursechef.AttrSlug: child.ID},
				Children:   []*coursechef.Node{},
				Unresolved: true,
			}
		default:
			resolved, err = b.resolve(dir, child, onPath, depth+1)
		}
		if err != nil {
			return nil, err
		}
		children = append(children, resolved)
	}

	node.Refs = nil
	node.Children = children
	return node, nil
}

// leaf loads an opaque leaf fragment into Content.
func (b *Builder) leaf(dir string, ref coursechef.Ref, ext string) (*coursechef.Node, error) {
	content, err := b.Resolver.ReadLeaf(dir, ref.Kind, ref.ID, ext)
	if err != nil {
		return nil, err
	}
	b.logger().Debug("loaded leaf", "kind", ref.Kind, "id", ref.ID, "bytes", len(content))
	return &coursechef.Node{
		Kind:     ref.Kind,
		ID:       ref.ID,
		Attrs:    map[string]string{coursechef.AttrURLName: ref.ID},
		Children: []*coursechef.Node{},
		Content:  content,
	}, nil
}

func (b *Builder) maxDepth() int {
	if b.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return b.MaxDepth
}

func (b *Builder) logger() *slog.Logger {
	return loggerOrDiscard(b.Logger)
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}
