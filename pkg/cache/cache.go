// Package cache provides pluggable response caching for the catalogue client.
//
// Three backends are available:
//   - file: Cache entries stored as files under a local directory (CLI default)
//   - redis: Redis-backed storage for shared or long-lived caches
//   - null: No-op backend that disables caching entirely
//
// Only enrichment detail payloads are cached by the downloader; paginated
// catalogue listings are always fetched live so a run never reports stale
// pagination metadata.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
//
// Get reports a miss with (nil, false, nil); errors are reserved for backend
// failures. Set stores data under key with the given TTL; a TTL of zero means
// the entry never expires. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
