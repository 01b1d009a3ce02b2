package mock

import (
	"context"

	"github.com/fwojciec/coursechef"
)

var _ coursechef.RunService = (*RunService)(nil)

// RunService is a mock implementation of coursechef.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *coursechef.Run) error
	FindRunsFn  func(ctx context.Context, filter coursechef.RunFilter) ([]*coursechef.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *coursechef.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter coursechef.RunFilter) ([]*coursechef.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
