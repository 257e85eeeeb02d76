// Package cache provides a pluggable byte cache for rendered artifacts.
//
// The server uses it to memoize finished PNG images keyed by the tool name
// and a hash of the call arguments, so identical chart requests skip the
// rendering pipeline entirely. Backends: [FileCache] for local disk,
// [RedisCache] for shared deployments, and [NullCache] to disable caching.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores opaque byte values with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey builds the cache key for a rendered chart: the tool name plus
// a hash of its canonicalized arguments.
func ArtifactKey(tool string, args any) string {
	data, _ := json.Marshal(args)
	return fmt.Sprintf("render:%s:%s", tool, Hash(data))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
