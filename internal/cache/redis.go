package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis is a Persister backed by a Redis instance.
type Redis struct {
	rdb *redis.Client
}

// NewRedis creates a persister over an established Redis client.
func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

// Save stores a value under key with no expiry; listings are replaced
// wholesale on every reload, which is the cache's only invalidation.
func (r *Redis) Save(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, key, value, 0).Err()
}

// Load retrieves the value stored under key.
func (r *Redis) Load(ctx context.Context, key string) ([]byte, error) {
	v, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return v, err
}
