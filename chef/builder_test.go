package chef_test

import (
	"testing"

	"github.com/fwojciec/coursechef"
	"github.com/fwojciec/coursechef/chef"
	"github.com/fwojciec/coursechef/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fragments serves fragment files from memory. Keys are "kind/id" for
// fragments and "kind/id.ext" for leaves; the flat course file is "/course".
type fragments struct {
	nodes  map[string]*coursechef.Node
	leaves map[string]string
}

func (f fragments) resolver() *mock.FragmentResolver {
	return &mock.FragmentResolver{
		ResolveFn: func(_, kind, id string) (*coursechef.Node, error) {
			n, ok := f.nodes[kind+"/"+id]
			if !ok {
				return nil, coursechef.Errorf(coursechef.ENOTFOUND, "XML file not found: %s/%s", kind, id)
			}
			return n.Clone(), nil
		},
		ReadLeafFn: func(_, kind, id, ext string) (string, error) {
			s, ok := f.leaves[kind+"/"+id+"."+ext]
			if !ok {
				return "", coursechef.Errorf(coursechef.ENOTFOUND, "%s file not found: %s", kind, id)
			}
			return s, nil
		},
	}
}

func fragment(kind, id string, attrs map[string]string, refs ...coursechef.Ref) *coursechef.Node {
	return &coursechef.Node{Kind: kind, ID: id, Attrs: attrs, Refs: refs}
}

func ref(kind, id string) coursechef.Ref {
	return coursechef.Ref{Kind: kind, ID: id}
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("resolves references in order", func(t *testing.T) {
		t.Parallel()

		f := fragments{
			nodes: map[string]*coursechef.Node{
				"course/course": fragment("course", "course",
					map[string]string{"display_name": "Body title", "course_image": "body.png"},
					ref("chapter", "ch1"), ref("wiki", "course-wiki"), ref("chapter", "ch2")),
				"/course": fragment("course", "course",
					map[string]string{"display_name": "Flat title", "course": "FA101"}),
				"chapter/ch1": fragment("chapter", "ch1", map[string]string{"display_name": "One"},
					ref("sequential", "s1")),
				"chapter/ch2": fragment("chapter", "ch2", map[string]string{"display_name": "Two"}),
				"sequential/s1": fragment("sequential", "s1", nil,
					ref("vertical", "v1")),
				"vertical/v1": fragment("vertical", "v1", nil,
					ref("html", "h1"), ref("video", "vid1"), ref("problem", "p1")),
			},
			leaves: map[string]string{
				"html/h1.html":   "<p>hi</p>",
				"video/vid1.xml": "<video/>",
				"problem/p1.xml": "<problem/>",
			},
		}

		b := &chef.Builder{Resolver: f.resolver()}
		root, err := b.Build("/course")
		require.NoError(t, err)

		assert.Equal(t, "course", root.Kind)
		assert.Equal(t, map[string]string{
			"display_name": "Flat title",
			"course_image": "body.png",
			"course":       "FA101",
		}, root.Attrs)
		assert.Nil(t, root.Refs)

		require.Len(t, root.Children, 3)
		assert.Equal(t, "ch1", root.Children[0].ID)
		assert.Equal(t, "course-wiki", root.Children[1].ID)
		assert.True(t, root.Children[1].Unresolved)
		assert.Equal(t, "ch2", root.Children[2].ID)
		assert.Empty(t, root.Children[2].Children)

		v1 := root.Children[0].Children[0].Children[0]
		require.Len(t, v1.Children, 3)
		assert.Equal(t, "html", v1.Children[0].Kind)
		assert.Equal(t, "<p>hi</p>", v1.Children[0].Content)
		assert.Equal(t, "<video/>", v1.Children[1].Content)
		assert.Equal(t, "<problem/>", v1.Children[2].Content)
		assert.Equal(t, "p1", v1.Children[2].Attrs["url_name"])
	})

	t.Run("missing fragment aborts", func(t *testing.T) {
		t.Parallel()

		f := fragments{
			nodes: map[string]*coursechef.Node{
				"course/course": fragment("course", "course", nil, ref("chapter", "gone")),
				"/course":       fragment("course", "course", nil),
			},
		}

		_, err := (&chef.Builder{Resolver: f.resolver()}).Build("/course")
		assert.Equal(t, coursechef.ENOTFOUND, coursechef.ErrorCode(err))
	})

	t.Run("missing leaf aborts", func(t *testing.T) {
		t.Parallel()

		f := fragments{
			nodes: map[string]*coursechef.Node{
				"course/course": fragment("course", "course", nil, ref("html", "gone")),
				"/course":       fragment("course", "course", nil),
			},
		}

		_, err := (&chef.Builder{Resolver: f.resolver()}).Build("/course")
		assert.Equal(t, coursechef.ENOTFOUND, coursechef.ErrorCode(err))
	})

	t.Run("detects reference cycle", func(t *testing.T) {
		t.Parallel()

		f := fragments{
			nodes: map[string]*coursechef.Node{
				"course/course": fragment("course", "course", nil, ref("chapter", "a")),
				"chapter/a":     fragment("chapter", "a", nil, ref("sequential", "b")),
				"sequential/b":  fragment("sequential", "b", nil, ref("chapter", "a")),
				"/course":       fragment("course", "course", nil),
			},
		}

		_, err := (&chef.Builder{Resolver: f.resolver()}).Build("/course")
		assert.Equal(t, coursechef.EMALFORMED, coursechef.ErrorCode(err))
		assert.Contains(t, coursechef.ErrorMessage(err), "cycle")
	})

	t.Run("shared child outside the current path is not a cycle", func(t *testing.T) {
		t.Parallel()

		f := fragments{
			nodes: map[string]*coursechef.Node{
				"course/course": fragment("course", "course", nil, ref("chapter", "a"), ref("chapter", "b")),
				"chapter/a":     fragment("chapter", "a", nil, ref("sequential", "s")),
				"chapter/b":     fragment("chapter", "b", nil, ref("sequential", "s")),
				"sequential/s":  fragment("sequential", "s", nil),
				"/course":       fragment("course", "course", nil),
			},
		}

		root, err := (&chef.Builder{Resolver: f.resolver()}).Build("/course")
		require.NoError(t, err)
		assert.NotSame(t, root.Children[0].Children[0], root.Children[1].Children[0])
	})

	t.Run("enforces depth limit", func(t *testing.T) {
		t.Parallel()

		f := fragments{
			nodes: map[string]*coursechef.Node{
				"course/course": fragment("course", "course", nil, ref("chapter", "a")),
				"chapter/a":     fragment("chapter", "a", nil, ref("sequential", "b")),
				"sequential/b":  fragment("sequential", "b", nil, ref("vertical", "c")),
				"vertical/c":    fragment("vertical", "c", nil),
				"/course":       fragment("course", "course", nil),
			},
		}

		_, err := (&chef.Builder{Resolver: f.resolver(), MaxDepth: 2}).Build("/course")
		assert.Equal(t, coursechef.EMALFORMED, coursechef.ErrorCode(err))
		assert.Contains(t, coursechef.ErrorMessage(err), "depth")
	})
}
