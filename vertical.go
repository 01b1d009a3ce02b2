package coursechef

// VerticalType is the semantic role of a vertical.
type VerticalType int

// VerticalType constants. VerticalUnrecognized is returned when no
// heuristic matches; callers must handle it explicitly.
const (
	VerticalUnrecognized VerticalType = iota
	VerticalLearningObjectives
	VerticalKnowledgeCheck
	VerticalDiscussion
	VerticalVideo
	VerticalTest
	VerticalHTML
)

var verticalTypeNames = map[VerticalType]string{
	VerticalUnrecognized:       "unrecognized_vertical",
	VerticalLearningObjectives: "learning_objectives_vertical",
	VerticalKnowledgeCheck:     "knowledge_check_vertical",
	VerticalDiscussion:         "discussion_vertical",
	VerticalVideo:              "video_vertical",
	VerticalTest:               "test_vertical",
	VerticalHTML:               "html_vertical",
}

// String returns the vertical type's name.
func (t VerticalType) String() string {
	return verticalTypeNames[t]
}

// IsExercise reports whether verticals of this type become exercises.
func (t VerticalType) IsExercise() bool {
	return t == VerticalTest || t == VerticalKnowledgeCheck
}

// ClassifyVertical maps a vertical to its role. Title phrases are checked
// first, then the kinds of its children.
func ClassifyVertical(v *Node, vocab *Vocabulary) VerticalType {
	title := v.Title()
	if containsAny(title, vocab.LearningObjectives) {
		return VerticalLearningObjectives
	}
	if containsAny(title, vocab.KnowledgeCheck) {
		return VerticalKnowledgeCheck
	}

	kinds := v.ChildKinds()
	switch {
	case kinds[KindDiscussion]:
		return VerticalDiscussion
	case kinds[KindVideo]:
		return VerticalVideo
	case kinds[KindProblem]:
		return VerticalTest
	case len(kinds) == 1 && kinds[KindHTML]:
		return VerticalHTML
	}
	return VerticalUnrecognized
}
