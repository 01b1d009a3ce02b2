package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/coursechef"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := coursechef.RunFilter{Limit: c.Limit}
	if c.Course != "" {
		filter.Course = &c.Course
	}
	if c.Failed {
		status := coursechef.RunFailed
		filter.Status = &status
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursechef.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'coursechef convert' to convert courses.")
		return nil
	}

	for _, r := range runs {
		detail := fmt.Sprintf("%d nodes", r.Nodes)
		if r.Status == coursechef.RunFailed {
			detail = r.ErrorCode + ": " + r.Message
		}
		fmt.Fprintf(deps.Stdout, "%s  %-9s  %s  %s\n", r.StartedAt.Local().Format(time.DateTime), r.Status, r.Course, detail)
	}

	return nil
}
