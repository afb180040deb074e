// Package cache stores rendered diagram artifacts keyed by source hash.
//
// Rendering the same pasted source twice is common in the HTTP front
// end, so the server caches finished SVG/PNG bytes. Three backends are
// provided:
//
//   - [FileCache]: directory-based, for single-instance deployments
//   - [RedisCache]: shared cache for multi-instance deployments
//   - [NullCache]: disables caching (tests, one-shot CLI runs)
//
// Keys are derived with [DiagramKey], which hashes the source together
// with the render options so a style or scale change never serves a
// stale artifact.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache is the storage interface for rendered artifacts.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// DiagramKey builds a cache key for a rendered diagram from the source
// text and the render parameters that affect the output bytes.
func DiagramKey(source []byte, format, style string, scale float64) string {
	h := sha256.New()
	h.Write(source)
	fmt.Fprintf(h, "|%s|%s|%g", format, style, scale)
	return "diagram:" + hex.EncodeToString(h.Sum(nil))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
