package cache

import (
	"context"
	"encoding/json"
	"time"
)

// GetOrSet returns the cached value under key if a live entry exists,
// otherwise invokes compute, stores the result with the given TTL and returns
// it. A stored empty payload counts as a miss.
//
// Concurrent misses for the same key each run compute independently; the last
// completed write wins. Store failures degrade to a recompute so a broken
// cache never fails the request, but compute errors always propagate.
func GetOrSet[T any](ctx context.Context, store Store, key string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if payload, ok, err := store.Get(ctx, key); err == nil && ok && payload != "" {
		var cached T
		if err := json.Unmarshal([]byte(payload), &cached); err == nil {
			return cached, nil
		}
		// Undecodable entry: drop it and recompute
		_ = store.Delete(ctx, key)
	}

	result, err := compute(ctx)
	if err != nil {
		return zero, err
	}

	if payload, err := json.Marshal(result); err == nil {
		_ = store.Set(ctx, key, string(payload), ttl)
	}

	return result, nil
}
