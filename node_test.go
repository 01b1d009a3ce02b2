package coursechef_test

import (
	"testing"

	"github.com/fwojciec/coursechef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Clone(t *testing.T) {
	t.Parallel()

	orig := &coursechef.Node{
		Kind:  coursechef.KindVertical,
		ID:    "v1",
		Attrs: map[string]string{"display_name": "Quiz"},
		Refs:  []coursechef.Ref{{Kind: "problem", ID: "p1"}},
		Children: []*coursechef.Node{{
			Kind:      coursechef.KindProblem,
			ID:        "p1",
			Children:  []*coursechef.Node{},
			Questions: []coursechef.Question{{ID: "p1-1", Answers: []string{"a", "b"}, Hints: []string{}}},
		}},
		Resources: []coursechef.Resource{{Href: "/static/a.pdf"}},
	}

	c := orig.Clone()
	require.Equal(t, orig, c)

	c.Attrs["display_name"] = "Changed"
	c.Refs[0].ID = "changed"
	c.Children[0].ID = "changed"
	c.Children[0].Questions[0].Answers[0] = "changed"
	c.Resources[0].Href = "changed"

	assert.Equal(t, "Quiz", orig.Title())
	assert.Equal(t, "p1", orig.Refs[0].ID)
	assert.Equal(t, "p1", orig.Children[0].ID)
	assert.Equal(t, "a", orig.Children[0].Questions[0].Answers[0])
	assert.Equal(t, "/static/a.pdf", orig.Resources[0].Href)
}

func TestNode_CloneNil(t *testing.T) {
	t.Parallel()

	var n *coursechef.Node
	assert.Nil(t, n.Clone())
}

func TestNode_ChildKinds(t *testing.T) {
	t.Parallel()

	n := &coursechef.Node{Children: []*coursechef.Node{{Kind: "html"}, {Kind: "video"}, {Kind: "html"}}}

	assert.Equal(t, map[string]bool{"html": true, "video": true}, n.ChildKinds())
}

func TestResource_Key(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/c/static/a.pdf", coursechef.Resource{Href: "/static/a.pdf", RelPath: "/c/static/a.pdf"}.Key())
	assert.Equal(t, "https://example.com/a", coursechef.Resource{Href: "https://example.com/a", External: true}.Key())
}
