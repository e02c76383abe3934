package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"luxesalon/models"
	"luxesalon/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore holds in-progress booking drafts keyed by session id.
// Drafts are transient: Delete of an unknown id is a no-op.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Save(ctx context.Context, session *models.BookingSession) error
	Delete(ctx context.Context, sessionID string) error
}

// MemorySessionStore keeps drafts in process memory. Used in tests and
// single-instance deployments.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.BookingSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.BookingSession)}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := session
	out.ServiceIDs = append([]string(nil), session.ServiceIDs...)
	return &out, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	stored.ServiceIDs = append([]string(nil), session.ServiceIDs...)
	s.sessions[session.SessionID] = stored
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// RedisSessionStore serializes drafts into Redis with a TTL so abandoned
// sessions expire on their own.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Client.Get(ctx, utils.SessionKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking session: %w", err)
	}

	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, utils.SessionKeyPrefix+session.SessionID, data, utils.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, utils.SessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
