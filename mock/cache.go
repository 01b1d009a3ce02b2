package mock

import (
	"context"

	"github.com/fwojciec/coursechef"
)

var _ coursechef.Cache = (*Cache)(nil)

// Cache is a mock implementation of coursechef.Cache.
type Cache struct {
	GetFn    func(ctx context.Context, key string) ([]byte, bool, error)
	PutFn    func(ctx context.Context, key string, value []byte) error
	ExpireFn func(ctx context.Context) (int, error)
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.GetFn(ctx, key)
}

func (c *Cache) Put(ctx context.Context, key string, value []byte) error {
	return c.PutFn(ctx, key, value)
}

func (c *Cache) Expire(ctx context.Context) (int, error) {
	return c.ExpireFn(ctx)
}
