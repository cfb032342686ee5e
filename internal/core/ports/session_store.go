package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// Session is the authenticated state behind an opaque session ID cookie.
type Session struct {
	UserID kernel.UUID
	Role   user.Role
}

// SessionStore persists login sessions keyed by an opaque session ID.
type SessionStore interface {
	// Get retrieves a session.
	// Returns errs.ErrObjectNotFound for unknown or expired session IDs.
	Get(ctx context.Context, sessionID string) (Session, error)

	// Save persists a session, resetting its TTL.
	Save(ctx context.Context, sessionID string, s Session) error

	// Delete ends a session. Deleting an absent session is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
