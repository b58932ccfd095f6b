package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKV stores each slot as a plain Redis string.  Slots carry no
// TTL: holds and sessions expire by timestamp inside the documents,
// not by key eviction.
type RedisKV struct {
	rdb *redis.Client
}

// NewRedisKV wraps an already-connected Redis client.  The client
// must be non-nil; connection setup and ping live in the config
// package so a failed Redis connection can degrade rate limiting
// independently of storage.
func NewRedisKV(rdb *redis.Client) *RedisKV {
	if rdb == nil {
		panic("nil redis client passed to NewRedisKV")
	}
	return &RedisKV{rdb: rdb}
}

// Get returns the slot bytes, or (nil, nil) when the key is absent.
// Backend failures are wrapped in ErrUnavailable.
func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: redis get %s: %v", ErrUnavailable, key, err)
	}
	return b, nil
}

// Set overwrites the slot bytes.
func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", ErrUnavailable, key, err)
	}
	return nil
}
