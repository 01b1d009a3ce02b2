package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/coursechef"
	main "github.com/fwojciec/coursechef/cmd/coursechef"
	"github.com/fwojciec/coursechef/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists runs with outcome", func(t *testing.T) {
		t.Parallel()

		at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		runs := &mock.RunService{
			FindRunsFn: func(_ context.Context, filter coursechef.RunFilter) ([]*coursechef.Run, error) {
				assert.Equal(t, 20, filter.Limit)
				assert.Nil(t, filter.Course)
				assert.Nil(t, filter.Status)
				return []*coursechef.Run{
					{Course: "first-aid", Status: coursechef.RunSucceeded, Nodes: 42, StartedAt: at},
					{Course: "chemistry", Status: coursechef.RunFailed, ErrorCode: coursechef.EVERTICALTYPE, Message: "unrecognized vertical", StartedAt: at},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Runs: runs}

		err := (&main.RunsCmd{Limit: 20}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "first-aid  42 nodes")
		assert.Contains(t, output, "chemistry  vertical_type: unrecognized vertical")
	})

	t.Run("passes course and failed filters", func(t *testing.T) {
		t.Parallel()

		var got coursechef.RunFilter
		runs := &mock.RunService{
			FindRunsFn: func(_ context.Context, filter coursechef.RunFilter) ([]*coursechef.Run, error) {
				got = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Runs: runs}

		err := (&main.RunsCmd{Course: "first-aid", Failed: true}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.Course)
		require.NotNil(t, got.Status)
		assert.Equal(t, "first-aid", *got.Course)
		assert.Equal(t, coursechef.RunFailed, *got.Status)
		assert.Contains(t, stdout.String(), "No runs found")
	})

	t.Run("reports service error", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			FindRunsFn: func(context.Context, coursechef.RunFilter) ([]*coursechef.Run, error) {
				return nil, coursechef.Errorf(coursechef.EINTERNAL, "database locked")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Runs: runs}

		err := (&main.RunsCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: database locked")
	})
}

func TestCacheExpireCmd_Run(t *testing.T) {
	t.Parallel()

	cache := &mock.Cache{
		ExpireFn: func(context.Context) (int, error) {
			return 7, nil
		},
	}

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Cache: cache}

	err := (&main.CacheExpireCmd{}).Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "Removed 7 expired entries\n", stdout.String())
}
