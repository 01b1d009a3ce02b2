package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/coursechef"
	"github.com/fwojciec/coursechef/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and round-trips fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(newTestDB(t))
		ctx := context.Background()
		started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		run := &coursechef.Run{
			Course:     "FA101",
			CourseDir:  "/data/first-aid/course",
			Status:     coursechef.RunSucceeded,
			TreeHash:   "9f86d081884c7d65",
			Nodes:      42,
			StartedAt:  started,
			FinishedAt: started.Add(3 * time.Second),
		}
		require.NoError(t, svc.CreateRun(ctx, run))
		assert.NotEmpty(t, run.ID)

		runs, err := svc.FindRuns(ctx, coursechef.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, run, runs[0])
	})

	t.Run("rejects invalid run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(newTestDB(t))

		err := svc.CreateRun(context.Background(), &coursechef.Run{Status: coursechef.RunFailed})
		require.Error(t, err)
		assert.Equal(t, coursechef.EINVALID, coursechef.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.RunService {
		t.Helper()

		svc := sqlite.NewRunService(newTestDB(t))
		base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		for i, r := range []struct {
			course string
			status coursechef.RunStatus
		}{
			{"FA101", coursechef.RunFailed},
			{"FA101", coursechef.RunSucceeded},
			{"CS50", coursechef.RunSucceeded},
		} {
			at := base.Add(time.Duration(i) * time.Minute)
			require.NoError(t, svc.CreateRun(context.Background(), &coursechef.Run{
				Course:     r.course,
				Status:     r.status,
				StartedAt:  at,
				FinishedAt: at,
			}))
		}
		return svc
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		runs, err := seed(t).FindRuns(context.Background(), coursechef.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, "CS50", runs[0].Course)
		assert.Equal(t, coursechef.RunFailed, runs[2].Status)
	})

	t.Run("filters by course and status", func(t *testing.T) {
		t.Parallel()

		course := "FA101"
		status := coursechef.RunSucceeded
		runs, err := seed(t).FindRuns(context.Background(), coursechef.RunFilter{Course: &course, Status: &status})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "FA101", runs[0].Course)
		assert.Equal(t, coursechef.RunSucceeded, runs[0].Status)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		runs, err := seed(t).FindRuns(context.Background(), coursechef.RunFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})

	t.Run("returns empty for no match", func(t *testing.T) {
		t.Parallel()

		course := "nope"
		runs, err := seed(t).FindRuns(context.Background(), coursechef.RunFilter{Course: &course})
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}
