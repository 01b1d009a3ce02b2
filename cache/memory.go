// Package cache provides memoization for expensive idempotent lookups.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/coursechef"
)

// Ensure Memory implements coursechef.Cache at compile time.
var _ coursechef.Cache = (*Memory)(nil)

// Memory is an in-process cache. Entries older than TTL are treated as
// absent; a zero TTL keeps entries forever.
type Memory struct {
	TTL time.Duration
	Now func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

type entry struct {
	value   []byte
	created time.Time
}

// NewMemory creates a new Memory cache.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{TTL: ttl, entries: make(map[string]entry)}
}

// Get returns the value stored under key.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok || m.expired(e) {
		return nil, false, nil
	}
	return append([]byte(nil), e.value...), true, nil
}

// Put stores value under key.
func (m *Memory) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entries == nil {
		m.entries = make(map[string]entry)
	}
	m.entries[key] = entry{value: append([]byte(nil), value...), created: m.now()}
	return nil
}

// Expire removes expired entries.
func (m *Memory) Expire(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for k, e := range m.entries {
		if m.expired(e) {
			delete(m.entries, k)
			n++
		}
	}
	return n, nil
}

func (m *Memory) expired(e entry) bool {
	return m.TTL > 0 && m.now().Sub(e.created) > m.TTL
}

func (m *Memory) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}
