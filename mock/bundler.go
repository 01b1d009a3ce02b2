package mock

import (
	"context"

	"github.com/fwojciec/coursechef"
)

var _ coursechef.Bundler = (*Bundler)(nil)

// Bundler is a mock implementation of coursechef.Bundler.
type Bundler struct {
	WriteBundleFn func(ctx context.Context, name string, entries []coursechef.BundleEntry) (string, error)
}

func (b *Bundler) WriteBundle(ctx context.Context, name string, entries []coursechef.BundleEntry) (string, error) {
	return b.WriteBundleFn(ctx, name, entries)
}
