package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/coursechef"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ coursechef.RunService = (*RunService)(nil)

// RunService implements coursechef.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a finished run and assigns its ID.
func (s *RunService) CreateRun(ctx context.Context, run *coursechef.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, course, course_dir, status, error_code, message, tree_hash, nodes, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Course, run.CourseDir, string(run.Status), run.ErrorCode, run.Message, run.TreeHash,
		run.Nodes, formatTime(run.StartedAt), formatTime(run.FinishedAt))

	return err
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter coursechef.RunFilter) ([]*coursechef.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, course, course_dir, status, error_code, message, tree_hash, nodes, started_at, finished_at FROM runs WHERE 1=1")

	if filter.Course != nil {
		query.WriteString(" AND course = ?")
		args = append(args, *filter.Course)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY started_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, 0)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*coursechef.Run
	for rows.Next() {
		var (
			run                   coursechef.Run
			status                string
			startedAt, finishedAt string
		)
		if err := rows.Scan(&run.ID, &run.Course, &run.CourseDir, &status, &run.ErrorCode, &run.Message,
			&run.TreeHash, &run.Nodes, &startedAt, &finishedAt); err != nil {
			return nil, err
		}
		run.Status = coursechef.RunStatus(status)

		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
