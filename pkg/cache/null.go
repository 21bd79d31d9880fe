package cache

import (
	"context"
	"time"
)

// NullCache stores nothing. One-shot CLI conversions and `serve --cache
// none` run on it, so every conversion is a miss.
type NullCache struct{}

// NewNullCache returns a cache that never hits.
func NewNullCache() Cache {
	return NullCache{}
}

// Get reports a miss for every key.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set drops the converted bytes.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// Delete has nothing to remove.
func (NullCache) Delete(context.Context, string) error {
	return nil
}

func (NullCache) Close() error {
	return nil
}

var _ Cache = NullCache{}
