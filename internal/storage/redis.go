package storage

import (
	"context"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// RedisSlot stores snapshots as plain Redis string values without expiry.
type RedisSlot struct {
	client *redis.Client
}

// ConnectRedis creates a client for addr and verifies it with PING.
func ConnectRedis(ctx context.Context, addr string) (*RedisSlot, error) {
	if addr == "" {
		return nil, &Error{Message: "redis address is empty"}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Protocol: 2,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, &Error{Message: fmt.Sprintf("failed to ping redis at %s", addr), Cause: err}
	}

	return &RedisSlot{client: client}, nil
}

func (s *RedisSlot) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, &Error{Message: fmt.Sprintf("failed to load snapshot %s", key), Cause: err}
	}
	return value, nil
}

func (s *RedisSlot) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return &Error{Message: fmt.Sprintf("failed to save snapshot %s", key), Cause: err}
	}
	return nil
}

func (s *RedisSlot) Close() error {
	return s.client.Close()
}
