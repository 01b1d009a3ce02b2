package coursechef_test

import (
	"testing"

	"github.com/fwojciec/coursechef"
	"github.com/stretchr/testify/assert"
)

func TestNewMastery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count int
		want  int
	}{
		{count: 1, want: 1},
		{count: 3, want: 3},
		{count: 5, want: 5},
		{count: 8, want: 5},
	}

	for _, tt := range tests {
		m := coursechef.NewMastery(tt.count)
		assert.Equal(t, &coursechef.Mastery{Model: coursechef.MasteryMofN, M: tt.want, N: tt.want}, m, "count=%d", tt.count)
	}
}

func TestCountNodes(t *testing.T) {
	t.Parallel()

	root := &coursechef.ContentNode{Children: []*coursechef.ContentNode{
		{Children: []*coursechef.ContentNode{{}, {}}},
		{},
	}}

	assert.Equal(t, 5, coursechef.CountNodes(root))
	assert.Equal(t, 0, coursechef.CountNodes(nil))
}
