// Package cache provides an in-memory ttl cache shared by request handlers.
// Entries are never swept, an expired entry stays in memory until overwritten.
package cache

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Entry is a cached value with its expiration time
type Entry[V any] struct {
	ExpiresAt time.Time
	Value     V
}

// TTL is a map of expiring entries, safe for concurrent use
type TTL[V any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[V]
	now     func() time.Time
	group   singleflight.Group
}

// Option configures TTL
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets time source, used in tests
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New makes an empty cache
func New[V any](opts ...Option) *TTL[V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &TTL[V]{entries: map[string]Entry[V]{}, now: o.now}
}

// Key builds a composite "source:query:ttlSeconds" key
func Key(source, query string, ttl time.Duration) string {
	return fmt.Sprintf("%s:%s:%d", source, query, int64(ttl/time.Second))
}

// Get returns a value if present and not expired
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !c.now().Before(e.ExpiresAt) {
		var zero V
		return zero, false
	}
	return e.Value, true
}

// Set stores value for ttl, replacing any previous entry
func (c *TTL[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = Entry[V]{ExpiresAt: c.now().Add(ttl), Value: value}
	c.mu.Unlock()
}

// Len returns number of stored entries, expired included
func (c *TTL[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetOrLoad returns a cached value, or calls load and caches its result for ttl.
// Concurrent misses on the same key share a single load call. Errors are not cached.
// The returned flag reports a cache hit.
func (c *TTL[V]) GetOrLoad(key string, ttl time.Duration, load func() (V, error)) (V, bool, error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}

	res, err, _ := c.group.Do(key, func() (any, error) {
		v, err := load()
		if err != nil {
			return v, err
		}
		c.Set(key, v, ttl)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return res.(V), false, nil
}
