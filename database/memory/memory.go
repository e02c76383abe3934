package memory

import (
	"context"
	"sync"

	"luxesalon/database"
)

// Store is an in-memory BlobStore. It backs tests and single-process runs
// where durability is not required.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewStore returns an empty in-memory blob store.
func NewStore() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, database.ErrKeyNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (s *Store) Save(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.blobs[key] = stored
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}
