package coursechef_test

import (
	"testing"

	"github.com/fwojciec/coursechef"
	"github.com/stretchr/testify/assert"
)

func vertical(title string, kinds ...string) *coursechef.Node {
	v := &coursechef.Node{Kind: coursechef.KindVertical, Attrs: map[string]string{}}
	if title != "" {
		v.Attrs[coursechef.AttrDisplayName] = title
	}
	for _, k := range kinds {
		v.Children = append(v.Children, &coursechef.Node{Kind: k})
	}
	return v
}

func TestClassifyVertical(t *testing.T) {
	t.Parallel()

	vocab := coursechef.DefaultVocabulary()

	tests := []struct {
		name string
		v    *coursechef.Node
		want coursechef.VerticalType
	}{
		{
			name: "video child",
			v:    vertical("Intro", "video"),
			want: coursechef.VerticalVideo,
		},
		{
			name: "video wins over problem",
			v:    vertical("Intro", "html", "video", "problem"),
			want: coursechef.VerticalVideo,
		},
		{
			name: "all html",
			v:    vertical("Reading", "html", "html"),
			want: coursechef.VerticalHTML,
		},
		{
			name: "problem without video",
			v:    vertical("Quiz", "html", "problem"),
			want: coursechef.VerticalTest,
		},
		{
			name: "discussion wins over video",
			v:    vertical("Talk", "video", "discussion"),
			want: coursechef.VerticalDiscussion,
		},
		{
			name: "knowledge check title regardless of children",
			v:    vertical("التحقق من المعرفة 1", "video", "discussion"),
			want: coursechef.VerticalKnowledgeCheck,
		},
		{
			name: "learning objectives title",
			v:    vertical("الاهداف التعليمية", "html"),
			want: coursechef.VerticalLearningObjectives,
		},
		{
			name: "no children",
			v:    vertical("Empty"),
			want: coursechef.VerticalUnrecognized,
		},
		{
			name: "html mixed with unknown kind",
			v:    vertical("Odd", "html", "library_content"),
			want: coursechef.VerticalUnrecognized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, coursechef.ClassifyVertical(tt.v, vocab))
		})
	}
}

func TestVerticalType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "video_vertical", coursechef.VerticalVideo.String())
	assert.Equal(t, "html_vertical", coursechef.VerticalHTML.String())
	assert.Equal(t, "knowledge_check_vertical", coursechef.VerticalKnowledgeCheck.String())
	assert.Equal(t, "unrecognized_vertical", coursechef.VerticalUnrecognized.String())
}

func TestVerticalType_IsExercise(t *testing.T) {
	t.Parallel()

	assert.True(t, coursechef.VerticalTest.IsExercise())
	assert.True(t, coursechef.VerticalKnowledgeCheck.IsExercise())
	assert.False(t, coursechef.VerticalVideo.IsExercise())
	assert.False(t, coursechef.VerticalUnrecognized.IsExercise())
}
