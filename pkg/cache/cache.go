// Package cache stores rendered graph artifacts keyed by content hash.
//
// Rendering DOT through Graphviz is the only expensive step in the pipeline,
// so the CLI and server cache the resulting SVG/PNG bytes. Keys are derived
// from the canonical DOT text and the output format: identical graphs hit
// the same entry no matter how they were loaded.
//
// Two implementations are provided: [FileCache] for persistent on-disk
// caching and [NullCache] for disabling caching without branching at call
// sites.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for artifact caches.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKey builds the cache key for a rendered artifact.
// dotHash is the content hash of the DOT text (see [Hash]); format is the
// output format ("svg", "png").
func RenderKey(dotHash, format string) string {
	return hashKey("render", dotHash, format)
}
