package cache

import (
	"context"
	"time"
)

// Cache is the read-side cache port used by the reporting layer. It is never
// part of the Allocation Engine write path; stale entries only delay
// visibility, they cannot corrupt the data model.
type Cache interface {
	// Get unmarshals the cached value for key into dest. It returns
	// (false, nil) on a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key for the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Invalidate removes all keys with the given prefix.
	Invalidate(ctx context.Context, prefix string) error
}
