package cache

import (
	"context"
	"time"
)

// Store is a key-value store with per-entry expiration. Implementations must
// be safe for concurrent use; Set replaces any existing entry atomically.
type Store interface {
	// Get returns the stored payload and whether a live entry exists
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores a payload under key with the given time-to-live
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete removes a key
	Delete(ctx context.Context, key string) error
}
