// Package redis provides a store.KV backed by Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/warmpath/warmpath/store"
)

// RedisKV implements store.KV using Redis
type RedisKV struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ store.KV = (*RedisKV)(nil)

// RedisOptions configuration for Redis connection
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string        // Key prefix, default "warmpath:"
	TTL      time.Duration // Expiration for stored values, default 0 (no expiration)
}

// NewRedisKV creates a new Redis-backed key-value store
func NewRedisKV(opts RedisOptions) *RedisKV {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "warmpath:"
	}

	return &RedisKV{
		client: client,
		prefix: prefix,
		ttl:    opts.TTL,
	}
}

func (s *RedisKV) storageKey(key string) string {
	return s.prefix + key
}

// Get returns the value stored at key
func (s *RedisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.storageKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}
	return data, true, nil
}

// Set stores value at key, overwriting any prior value
func (s *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.storageKey(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", key, err)
	}
	return nil
}

// Delete removes the key
func (s *RedisKV) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.storageKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from redis: %w", key, err)
	}
	return nil
}

// Close closes the underlying client
func (s *RedisKV) Close() error {
	return s.client.Close()
}
