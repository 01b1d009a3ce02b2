package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/coursechef"
)

// Compile-time interface verification.
var _ coursechef.Cache = (*Cache)(nil)

// DefaultCacheTTL matches the age after which translations are refreshed.
const DefaultCacheTTL = 500000 * time.Second

// Cache implements coursechef.Cache using SQLite. Entries older than TTL
// are treated as absent; a zero TTL keeps entries forever.
type Cache struct {
	db  *DB
	TTL time.Duration
	Now func() time.Time
}

// NewCache creates a new Cache.
func NewCache(db *DB, ttl time.Duration) *Cache {
	return &Cache{db: db, TTL: ttl}
}

// Get returns the value stored under key.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		value     []byte
		createdAt string
	)
	err := c.db.QueryRowContext(ctx, `SELECT value, created_at FROM cache WHERE key = ?`, key).Scan(&value, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	created, err := parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, false, err
	}
	if c.TTL > 0 && c.now().Sub(created) > c.TTL {
		return nil, false, nil
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return coursechef.Errorf(coursechef.EINVALID, "cache key required")
	}
	if value == nil {
		value = []byte{}
	}
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO cache (key, value, created_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, created_at = excluded.created_at
	`, key, value, formatTime(c.now()))
	return err
}

// Expire deletes entries older than TTL.
func (c *Cache) Expire(ctx context.Context) (int, error) {
	if c.TTL <= 0 {
		return 0, nil
	}
	cutoff := formatTime(c.now().Add(-c.TTL))
	result, err := c.db.ExecContext(ctx, `DELETE FROM cache WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	return int(n), err
}

func (c *Cache) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
