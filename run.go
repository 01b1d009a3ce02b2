package coursechef

import (
	"context"
	"time"
)

// RunStatus is the outcome of one course conversion.
type RunStatus string

// RunStatus constants.
const (
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
)

// Run records one course conversion.
type Run struct {
	ID         string    `json:"id"`
	Course     string    `json:"course"`
	CourseDir  string    `json:"courseDir"`
	Status     RunStatus `json:"status"`
	ErrorCode  string    `json:"errorCode"`
	Message    string    `json:"message"`
	TreeHash   string    `json:"treeHash"`
	Nodes      int       `json:"nodes"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Course == "" {
		return Errorf(EINVALID, "run course required")
	}
	if r.Status != RunSucceeded && r.Status != RunFailed {
		return Errorf(EINVALID, "invalid run status %q", r.Status)
	}
	return nil
}

// RunService represents a service for recording conversion runs.
type RunService interface {
	// CreateRun records a finished run and assigns its ID.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	Course *string    `json:"course"`
	Status *RunStatus `json:"status"`

	Limit int `json:"limit"`
}

// CountNodes returns the number of nodes in a content tree.
func CountNodes(n *ContentNode) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, child := range n.Children {
		count += CountNodes(child)
	}
	return count
}
