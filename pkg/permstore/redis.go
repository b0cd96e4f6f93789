package permstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultSlotKey is the Redis key holding the serialized matrix.
const DefaultSlotKey = "eishro:merchant-permissions"

// RedisStorage persists the matrix blob under a single Redis string
// key. It is the cross-process analogue of the browser's localStorage
// slot: whole-blob reads and writes, no locking, last writer wins.
type RedisStorage struct {
	client *redis.Client
	key    string
}

// NewRedisStorage creates a Redis-backed slot. An empty key falls back
// to DefaultSlotKey.
func NewRedisStorage(client *redis.Client, key string) *RedisStorage {
	if key == "" {
		key = DefaultSlotKey
	}
	return &RedisStorage{client: client, key: key}
}

func (s *RedisStorage) Get(ctx context.Context) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrStorageRead, err)
	}
	return data, true, nil
}

func (s *RedisStorage) Set(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return errors.Join(ErrStorageWrite, err)
	}
	return nil
}

// Key returns the slot key, which writers must pair with the sync
// channel name so other consumers observe their updates.
func (s *RedisStorage) Key() string {
	return s.key
}
