// Package cache provides byte-level caching with pluggable backends.
//
// Three implementations are available:
//   - [FileCache]: file-based storage for CLI usage
//   - [RedisCache]: Redis-backed storage for the HTTP service
//   - [NullCache]: no-op cache for tests or when caching is disabled
//
// Values are opaque byte slices with an optional TTL; callers handle their
// own serialization.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit; a miss
	// is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Key builds a namespaced cache key from arbitrary components by hashing
// them, so raw paths and tag strings never leak into backend key syntax.
func Key(namespace string, parts ...string) string {
	joined := ""
	for _, p := range parts {
		joined += p + "\x00"
	}
	return namespace + ":" + Hash([]byte(joined))
}

// keyType extracts the namespace from a key built by [Key], for hook
// reporting.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}
