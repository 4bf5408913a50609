// Package cache stores rendered pack artifacts between runs.
//
// Sizing and layout are cheap, but rasterizing through rsvg-convert and
// laying out schematics through Graphviz are not. The [pipeline] stores their
// outputs here, keyed by everything that influences the bytes.
//
// # Backends
//
//   - [FileCache]: sharded JSON files under the user cache directory (CLI)
//   - [RedisCache]: a shared Redis instance (HTTP server)
//   - [NullCache]: stores nothing (--no-cache and tests)
//
// All backends are safe for concurrent use.
//
// # Keys
//
// A [Keyer] derives keys from stage inputs. Keys are a stage prefix plus a
// SHA-256 of the JSON-encoded inputs, so any change to an input produces a
// new key. [ScopedKeyer] adds a namespace prefix on top.
//
// [pipeline]: github.com/matzehuels/cellstack/pkg/pipeline
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Default lifetimes per stage.
const (
	TTLScene     = 30 * 24 * time.Hour
	TTLArtifact  = 7 * 24 * time.Hour
	TTLSchematic = 7 * 24 * time.Hour
)
