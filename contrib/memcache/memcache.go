// Package memcache provides an in-memory implementation of the
// hoist.Cache interface with per-entry TTLs, plus msgpack helpers for
// storing typed values. It backs the demo harness's read path; the path
// resolver itself never touches a cache.
package memcache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/hoistdb/hoist"
)

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Cache is an in-memory hoist.Cache. The zero value is not usable; use
// New. All methods are safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry

	// now is swappable for tests.
	now func() time.Time
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get retrieves a value from the cache. Returns nil, nil if the key does
// not exist or has expired.
func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, nil
	}
	return e.value, nil
}

// Set stores a value with an optional TTL. A ttl of 0 means no expiry.
func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return nil
}

// Delete removes a value from the cache.
func (c *Cache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// DeletePrefix removes all values with the given prefix.
func (c *Cache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
	return nil
}

// Clear removes all values from the cache.
func (c *Cache) Clear(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
	return nil
}

// Len returns the number of entries, including not-yet-purged expired
// ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ hoist.Cache = (*Cache)(nil)

// SetValue msgpack-encodes v and stores it under key.
func SetValue(ctx context.Context, c hoist.Cache, key string, v any, ttl time.Duration) error {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, b, ttl)
}

// GetValue retrieves and msgpack-decodes the value under key into v.
// The second return is false when the key is absent.
func GetValue(ctx context.Context, c hoist.Cache, key string, v any) (bool, error) {
	b, err := c.Get(ctx, key)
	if err != nil || b == nil {
		return false, err
	}
	if err := msgpack.Unmarshal(b, v); err != nil {
		return false, err
	}
	return true, nil
}
