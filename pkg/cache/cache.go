// Package cache is a get-or-compute expiring key-value port.
// The store is never authoritative: readers that miss, or hit a broken
// backend, fall through to the computation.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

type Cache interface {
	// Get returns the cached payload and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores the payload under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Fetch returns the cached value for key, computing and storing it on a miss.
// Cache failures degrade to a direct computation and are only logged.
func Fetch[T any](ctx context.Context, c Cache, log *zap.Logger, key string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	data, ok, err := c.Get(ctx, key)
	if err != nil {
		log.Warn("cache get", zap.String("key", key), zap.Error(err))
	} else if ok {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			log.Warn("cache decode", zap.String("key", key), zap.Error(err))
		} else {
			return v, nil
		}
	}

	v, err := compute(ctx)
	if err != nil {
		return zero, err
	}

	if data, err := json.Marshal(v); err == nil {
		if err := c.Set(ctx, key, data, ttl); err != nil {
			log.Warn("cache set", zap.String("key", key), zap.Error(err))
		}
	}
	return v, nil
}
