package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for accounts.
type UserRepository interface {
	// Add persists a new account. Emails are unique; adding a duplicate
	// returns errs.ErrConflict.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves an account by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such account exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves an account by its normalized email.
	// Returns errs.ErrObjectNotFound when no such account exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
