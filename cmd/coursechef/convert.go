package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/coursechef"
	"github.com/fwojciec/coursechef/chef"
	"github.com/fwojciec/coursechef/fs"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	path := c.List
	if path == "" {
		path = filepath.Join(deps.DataDir, fs.CourseListFile)
	}

	list, err := fs.ReadCourseList(path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursechef.ErrorMessage(err))
		return err
	}

	courses, err := selectCourses(list.Courses, c.Course)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursechef.ErrorMessage(err))
		return err
	}

	title := c.Title
	if title == "" {
		title = list.Title
	}
	channel := coursechef.Channel{
		Title:        title,
		SourceDomain: c.SourceDomain,
		SourceID:     c.SourceID,
		Description:  c.Description,
		Thumbnail:    c.Thumbnail,
		Language:     deps.Chef.Transformer.Language,
	}

	if c.Concurrency > 0 {
		deps.Chef.Concurrency = c.Concurrency
	}
	deps.Chef.KeepGoing = c.KeepGoing

	progress := func(event chef.ProgressEvent) {
		switch event.Type {
		case chef.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Converting %d courses\n", event.Total)
		case chef.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.Course)
		case chef.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %s\n", event.Course, coursechef.ErrorMessage(event.Error))
		case chef.ProgressFinished:
			// Summary printed after conversion completes
		}
	}

	result, err := deps.Chef.ConvertAll(deps.Ctx, channel, courses, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error converting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Converted %d courses, %d failed\n", result.Converted, result.Failed)
	return nil
}

// selectCourses returns the courses named in names, in list order, or all
// of them when names is empty.
func selectCourses(courses []coursechef.CourseInfo, names []string) ([]coursechef.CourseInfo, error) {
	if len(names) == 0 {
		return courses, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	var selected []coursechef.CourseInfo
	for _, c := range courses {
		if wanted[c.Name] {
			selected = append(selected, c)
			delete(wanted, c.Name)
		}
	}
	for _, n := range names {
		if wanted[n] {
			return nil, coursechef.Errorf(coursechef.ENOTFOUND, "course %q not in course list", n)
		}
	}
	return selected, nil
}
