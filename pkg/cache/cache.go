// Package cache stores laid-out canvas documents so repeated layout
// requests for the same input skip the engine.
//
// Three backends implement [Cache]:
//   - [FileCache] keeps entries as JSON files for CLI use
//   - [RedisCache] shares entries between server instances
//   - [NullCache] disables caching
//
// Keys come from a [Keyer]. The default keyer hashes the input document
// together with the layout parameters, so changing the margin or default
// node size never serves a stale layout.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. An expired
	// entry is a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey returns the key for a layout of the document with the given
	// content hash.
	LayoutKey(docHash string, opts LayoutKeyOpts) string
}

// LayoutKeyOpts are the parameters that change a layout result.
type LayoutKeyOpts struct {
	Operation     string `json:"op"`
	Margin        int    `json:"margin"`
	DefaultWidth  int    `json:"default_width"`
	DefaultHeight int    `json:"default_height"`
}

// DefaultKeyer produces "layout:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey hashes the document hash together with opts.
func (DefaultKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", docHash, opts)
}
