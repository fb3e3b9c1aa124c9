// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/financas-app/backend/internal/application/adapter"
	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
)

// sessionKey is the fixed key the persisted session lives under. A single
// device holds a single session, so the key never varies.
const sessionKey = "session:user"

// redisSessionStore implements the adapter.SessionStore interface on redis.
type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a new redis-backed session store.
func NewRedisSessionStore(client *redis.Client) adapter.SessionStore {
	return &redisSessionStore{
		client: client,
	}
}

// Save overwrites the persisted session. Sessions do not expire; logout is
// the only removal path.
func (s *redisSessionStore) Save(ctx context.Context, session entity.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Load reads the persisted session, returning domain ErrNoSession when the
// key is absent.
func (s *redisSessionStore) Load(ctx context.Context) (*entity.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session entity.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		// A corrupt payload is unrecoverable; treat it as no session.
		return nil, domainerror.ErrNoSession
	}
	return &session, nil
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (s *redisSessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
