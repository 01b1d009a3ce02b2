package coursechef

// Source node kinds with special handling.
const (
	KindCourse     = "course"
	KindChapter    = "chapter"
	KindSequential = "sequential"
	KindVertical   = "vertical"
	KindHTML       = "html"
	KindVideo      = "video"
	KindProblem    = "problem"
	KindWiki       = "wiki"
	KindDiscussion = "discussion"
)

// Common source attributes.
const (
	AttrDisplayName = "display_name"
	AttrURLName     = "url_name"
	AttrSlug        = "slug"
	AttrCourse      = "course"
	AttrCourseImage = "course_image"
)

// Ref is an unresolved reference to a child fragment.
type Ref struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// Node is one element of the source course tree.
//
// The resolver produces nodes with Refs set; the builder replaces them with
// resolved Children. Annotation fields are filled by the pruner and are only
// meaningful for specific kinds.
type Node struct {
	Kind       string            `json:"kind"`
	ID         string            `json:"id"`
	Attrs      map[string]string `json:"attrs,omitempty"`
	Refs       []Ref             `json:"refs,omitempty"`
	Children   []*Node           `json:"children"`
	Unresolved bool              `json:"unresolved,omitempty"`

	Content     string     `json:"content,omitempty"`
	Text        string     `json:"text,omitempty"`
	Description string     `json:"description,omitempty"`
	Resources   []Resource `json:"downloadableResources,omitempty"`
	Questions   []Question `json:"questions,omitempty"`
	YoutubeID   string     `json:"youtubeId,omitempty"`
	Path        string     `json:"path,omitempty"`
}

// Title returns the node's display name, or "" if it has none.
func (n *Node) Title() string {
	return n.Attrs[AttrDisplayName]
}

// Clone returns a deep copy of the node and its subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Attrs != nil {
		c.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			c.Attrs[k] = v
		}
	}
	if n.Refs != nil {
		c.Refs = append([]Ref(nil), n.Refs...)
	}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	if n.Resources != nil {
		c.Resources = append([]Resource(nil), n.Resources...)
	}
	if n.Questions != nil {
		c.Questions = make([]Question, len(n.Questions))
		for i, q := range n.Questions {
			c.Questions[i] = q.Clone()
		}
	}
	return &c
}

// ChildKinds returns the set of kinds among the node's direct children.
func (n *Node) ChildKinds() map[string]bool {
	kinds := make(map[string]bool, len(n.Children))
	for _, child := range n.Children {
		kinds[child.Kind] = true
	}
	return kinds
}

// Resource describes one downloadable file referenced from an HTML fragment.
type Resource struct {
	// Href is the decoded reference as written in the source markup.
	Href string `json:"href"`

	// RelPath is the resolved on-disk path. Empty for external links.
	RelPath string `json:"relPath,omitempty"`

	Ext      string `json:"ext"`
	Filename string `json:"filename"`
	Title    string `json:"title"`

	// LinkHTML is the original link markup, kept for inspection in the clean tree.
	LinkHTML string `json:"linkHtml"`

	// Missing is set when no file exists at RelPath after the fallback lookup.
	Missing bool `json:"missing,omitempty"`

	// External is set for references outside the course's static directory.
	External bool `json:"external,omitempty"`
}

// Key returns the value used to deduplicate resources within a bundle.
func (r Resource) Key() string {
	if r.RelPath != "" {
		return r.RelPath
	}
	return r.Href
}

// QuestionType identifies how a question is answered.
type QuestionType string

// QuestionType constants.
const (
	SingleSelection   QuestionType = "single_selection"
	MultipleSelection QuestionType = "multiple_selection"
)

// Question is one assessment item extracted from a problem fragment.
type Question struct {
	Type           QuestionType `json:"questionType"`
	ID             string       `json:"id"`
	Text           string       `json:"question"`
	Answers        []string     `json:"allAnswers"`
	CorrectAnswer  string       `json:"correctAnswer,omitempty"`
	CorrectAnswers []string     `json:"correctAnswers,omitempty"`
	Hints          []string     `json:"hints"`
}

// Clone returns a copy of q that shares no slices with it.
func (q Question) Clone() Question {
	q.Answers = copyStrings(q.Answers)
	q.CorrectAnswers = copyStrings(q.CorrectAnswers)
	q.Hints = copyStrings(q.Hints)
	return q
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
