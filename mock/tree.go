package mock

import (
	"context"

	"github.com/fwojciec/coursechef"
)

var _ coursechef.TreeWriter = (*TreeWriter)(nil)

// TreeWriter is a mock implementation of coursechef.TreeWriter.
type TreeWriter struct {
	WriteTreeFn    func(ctx context.Context, stage coursechef.Stage, id string, v any) error
	WriteChannelFn func(ctx context.Context, ch *coursechef.Channel) error
}

func (w *TreeWriter) WriteTree(ctx context.Context, stage coursechef.Stage, id string, v any) error {
	return w.WriteTreeFn(ctx, stage, id, v)
}

func (w *TreeWriter) WriteChannel(ctx context.Context, ch *coursechef.Channel) error {
	return w.WriteChannelFn(ctx, ch)
}
