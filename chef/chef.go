package chef

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/coursechef"
	"golang.org/x/sync/errgroup"
)

// Chef runs the full conversion for staged courses.
type Chef struct {
	Builder     *Builder
	Pruner      *Pruner
	Transformer *Transformer
	Trees       coursechef.TreeWriter
	Runs        coursechef.RunService
	Concurrency int

	// KeepGoing logs a failed course and continues with the rest of the
	// batch instead of aborting it.
	KeepGoing bool

	Logger *slog.Logger
	Now    func() time.Time
}

// Result holds the outcome of a batch conversion.
type Result struct {
	Channel   *coursechef.Channel
	Converted int
	Failed    int
}

// ProgressEvent reports progress during a batch conversion.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Course    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting conversion progress.
type ProgressFunc func(event ProgressEvent)

// ConvertAll converts courses and returns channel with one topic per
// converted course, in input order. The channel record is written through
// Trees when every course has been processed.
func (c *Chef) ConvertAll(ctx context.Context, channel coursechef.Channel, courses []coursechef.CourseInfo, progress ProgressFunc) (*Result, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	// Workers report through one lock so progress is never called
	// concurrently.
	var mu sync.Mutex
	report := func(e ProgressEvent) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		progress(e)
	}

	total := len(courses)
	report(ProgressEvent{Type: ProgressStarted, Total: total})

	var (
		completed atomic.Int64
		failed    atomic.Int64
	)
	topics := make([]*coursechef.ContentNode, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, course := range courses {
		g.Go(func() error {
			topic, err := c.ConvertCourse(gctx, course)
			done := int(completed.Add(1))
			if err != nil {
				failed.Add(1)
				report(ProgressEvent{Type: ProgressFailed, Completed: done, Total: total, Course: course.Name, Error: err})
				if c.KeepGoing {
					c.logger().Error("course failed", "course", course.Name, "code", coursechef.ErrorCode(err), "error", err)
					return nil
				}
				return err
			}
			topics[i] = topic
			report(ProgressEvent{Type: ProgressCompleted, Completed: done, Total: total, Course: course.Name})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	channel.Children = make([]*coursechef.ContentNode, 0, total)
	for _, topic := range topics {
		if topic != nil {
			channel.Children = append(channel.Children, topic)
		}
	}

	if err := c.Trees.WriteChannel(ctx, &channel); err != nil {
		return nil, fmt.Errorf("write channel: %w", err)
	}

	report(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return &Result{
		Channel:   &channel,
		Converted: len(channel.Children),
		Failed:    int(failed.Load()),
	}, nil
}

// ConvertCourse converts one staged course, writing a snapshot after each
// stage, and records the run when Runs is set.
func (c *Chef) ConvertCourse(ctx context.Context, course coursechef.CourseInfo) (*coursechef.ContentNode, error) {
	run := &coursechef.Run{
		Course:    course.Name,
		CourseDir: course.Dir(),
		StartedAt: c.now(),
	}

	topic, err := c.convert(ctx, course.Dir())
	run.FinishedAt = c.now()
	if err != nil {
		run.Status = coursechef.RunFailed
		run.ErrorCode = coursechef.ErrorCode(err)
		run.Message = err.Error()
	} else {
		run.Status = coursechef.RunSucceeded
		run.Nodes = coursechef.CountNodes(topic)
		run.TreeHash = treeHash(topic)
	}

	if c.Runs != nil && ctx.Err() == nil {
		if rerr := c.Runs.CreateRun(ctx, run); rerr != nil {
			c.logger().Warn("recording run failed", "course", course.Name, "error", rerr)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", course.Name, err)
	}
	c.logger().Info("course converted", "course", course.Name, "nodes", run.Nodes, "duration", run.FinishedAt.Sub(run.StartedAt))
	return topic, nil
}

func (c *Chef) convert(ctx context.Context, dir string) (*coursechef.ContentNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	original, err := c.Builder.Build(dir)
	if err != nil {
		return nil, err
	}

	id := original.Attrs[coursechef.AttrCourse]
	if id == "" {
		id = original.ID
	}
	if err := c.Trees.WriteTree(ctx, coursechef.StageOriginal, id, original); err != nil {
		return nil, err
	}

	clean, err := c.Pruner.Prune(original, dir)
	if err != nil {
		return nil, err
	}
	if err := c.Trees.WriteTree(ctx, coursechef.StageClean, id, clean); err != nil {
		return nil, err
	}

	transformed, err := c.Transformer.Transform(ctx, clean, dir)
	if err != nil {
		return nil, err
	}
	transformed = coursechef.Flatten(transformed)
	if err := c.Trees.WriteTree(ctx, coursechef.StageTransformed, id, transformed); err != nil {
		return nil, err
	}

	return transformed, nil
}

func (c *Chef) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *Chef) logger() *slog.Logger {
	return loggerOrDiscard(c.Logger)
}

// treeHash returns the xxhash of the tree's JSON encoding.
func treeHash(n *coursechef.ContentNode) string {
	data, _ := json.Marshal(n)
	return fmt.Sprintf("%x", xxhash.Sum64(data))
}
