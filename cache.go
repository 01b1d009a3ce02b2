package coursechef

import "context"

// Cache is a key/value store whose entries expire after a fixed age.
type Cache interface {
	// Get returns the value for key. ok is false if the key is absent or expired.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put stores value under key, replacing any previous entry.
	Put(ctx context.Context, key string, value []byte) error

	// Expire removes expired entries and returns how many were removed.
	Expire(ctx context.Context) (int, error)
}
