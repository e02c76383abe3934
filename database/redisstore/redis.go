// File: database/redisstore/redis.go
package redisstore

import (
	"context"
	"fmt"

	"luxesalon/database"

	"github.com/go-redis/redis/v8"
)

// Store is a Redis-backed BlobStore. Blobs are stored without expiry; the
// reservation collection and identity record live until explicitly replaced.
type Store struct {
	client *redis.Client
}

// NewStore wraps an initialized Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, database.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to load blob %q: %w", key, err)
	}
	return blob, nil
}

func (s *Store) Save(ctx context.Context, key string, blob []byte) error {
	if err := s.client.Set(ctx, key, blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to save blob %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete blob %q: %w", key, err)
	}
	return nil
}
