package cache

import (
	"context"
	"time"
)

// Cache is the contract of the read-through cache layer.
// Implementations: Redis (infrastructure/cache).
type Cache interface {
	// Get loads key and unmarshals it into dest.
	// found = false on a cache miss, dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value (JSON encoded) with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}
