// Package cache stores computed layouts keyed by graph content, so
// repeated runs over the same input skip the layering and ordering
// passes entirely.
//
// Three backends implement [Cache]: [FileCache] for local runs,
// [RedisCache] for shared deployments, and [NullCache] to disable
// caching. [ScopedCache] prefixes keys for namespace isolation.
package cache

import (
	"context"
	"time"
)

// Default TTLs per content type.
const (
	// TTLLayout is the default expiry for cached layout results. A
	// layout is a pure function of its document and options, so this
	// bounds disk growth rather than staleness.
	TTLLayout = 7 * 24 * time.Hour
)

// Cache is the storage interface for computed results.
// Get reports a miss with (nil, false, nil); errors are reserved for
// backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
