// Package cache stores encoded graph streams so repeated conversions of the
// same input can be answered without re-encoding.
//
// Three backends implement [Cache]:
//   - [NullCache] never stores anything
//   - [FileCache] keeps entries as JSON files, for single-host use
//   - [RedisCache] shares entries between server instances
//
// Keys are built by a [Keyer] from the conversion options and a hash of the
// request body, so different options never share an entry.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long encoded results are kept when no TTL is configured.
const DefaultTTL = 24 * time.Hour

// Cache is a byte store with per-entry expiration.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// EncodeKeyOpts are the options that change the bytes of an encoding.
type EncodeKeyOpts struct {
	Format    string `json:"format"`
	ZeroBased bool   `json:"zero_based"`
	Strict    bool   `json:"strict"`
}

// DecodeKeyOpts are the options that change the text of a decoding.
type DecodeKeyOpts struct {
	ZeroBased bool `json:"zero_based"`
	Classic   bool `json:"classic,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// EncodeKey keys the binary stream produced from adjacency text.
	EncodeKey(body []byte, opts EncodeKeyOpts) string

	// DecodeKey keys the adjacency text produced from a binary stream.
	DecodeKey(body []byte, opts DecodeKeyOpts) string
}

// DefaultKeyer hashes the body together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// EncodeKey returns "encode:<sha256>".
func (DefaultKeyer) EncodeKey(body []byte, opts EncodeKeyOpts) string {
	return conversionKey("encode", body, opts)
}

// DecodeKey returns "decode:<sha256>".
func (DefaultKeyer) DecodeKey(body []byte, opts DecodeKeyOpts) string {
	return conversionKey("decode", body, opts)
}
