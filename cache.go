package hoist

import (
	"context"
	"time"
)

// Cache is the interface for caching query results in the layers that
// consume resolved include paths. The resolver itself never caches: each
// ResolvePaths call recomputes from the schema graph. Implementations may
// back this with Redis, Memcached, or an in-memory store (see
// contrib/memcache).
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns nil, nil if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with an optional TTL.
	// If ttl is 0, the value should not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes all values with the given prefix.
	DeletePrefix(ctx context.Context, prefix string) error

	// Clear removes all values from the cache.
	Clear(ctx context.Context) error
}

// CacheKey identifies one eager-fetch query execution: the root entity
// type plus the include paths attached to it.
type CacheKey struct {
	Root  string
	Paths []string
}

// String returns the string representation of the cache key.
func (k CacheKey) String() string {
	s := k.Root
	for _, p := range k.Paths {
		s += ":" + p
	}
	return s
}
