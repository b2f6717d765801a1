// Package cache provides a small result cache for computed layouts.
//
// Layout computation is pure and derivable, so cached entries are always
// disposable: a TTL bounds their life and clearing the cache is never
// destructive. Backends:
//   - file: directory of JSON entries for CLI usage
//   - redis: shared cache for the HTTP service
//   - null: disables caching
//
// Keys are built with [Key], which hashes the canonical request so that any
// change to the scheme or the layout constants produces a different key.
package cache

import (
	"context"
	"errors"
	"time"
)

// Cache stores opaque byte values with per-entry expiration.
type Cache interface {
	// Get retrieves a value. The second result is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores the entry without
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ErrCacheMiss is returned by helpers that treat a miss as an error.
var ErrCacheMiss = errors.New("cache miss")
