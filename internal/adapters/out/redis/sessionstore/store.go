// Package sessionstore keeps login sessions in Redis, keyed by the opaque
// session ID handed to the browser. Expiry in Redis is the logout-by-
// inactivity mechanism: a session that is not refreshed simply disappears.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long an untouched session survives.
const DefaultTTL = 24 * time.Hour

type sessionDTO struct {
	UserID string `json:"user_id"`
	Role   int    `json:"role"`
}

// RedisSessionStore implements SessionStore on top of go-redis.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore creates a session store. A non-positive ttl falls
// back to DefaultTTL.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves a session. Unknown and expired session IDs are
// indistinguishable here; both come back as not found.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (ports.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.Session{}, errs.NewObjectNotFoundError("session", sessionID)
	}
	if err != nil {
		return ports.Session{}, fmt.Errorf("redis get failed: %w", err)
	}

	var dto sessionDTO
	if err = json.Unmarshal(data, &dto); err != nil {
		return ports.Session{}, fmt.Errorf("unmarshal session failed: %w", err)
	}

	userID, err := kernel.UUIDFromString(dto.UserID)
	if err != nil {
		return ports.Session{}, err
	}

	role := user.Role(dto.Role)
	if err = role.Validate(); err != nil {
		return ports.Session{}, err
	}

	return ports.Session{UserID: userID, Role: role}, nil
}

// Save persists a session, resetting its TTL.
func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, session ports.Session) error {
	data, err := json.Marshal(sessionDTO{
		UserID: session.UserID.String(),
		Role:   int(session.Role),
	})
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}

	if err = s.client.Set(ctx, sessionKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Delete ends a session. Deleting an absent session is a no-op.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
