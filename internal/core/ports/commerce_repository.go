package ports

import (
	"context"

	"marketplace/internal/core/domain/model/commerce"
	"marketplace/internal/core/domain/model/kernel"
)

// CommerceRepository defines the persistence contract for commerces and the
// client favorite relation. Favorites are a plain (client, commerce) pair
// with no behavior of their own, so they live here rather than behind an
// aggregate.
type CommerceRepository interface {
	// Add persists a new commerce.
	Add(ctx context.Context, aggregate *commerce.Commerce) error

	// Get retrieves a commerce by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such commerce exists.
	Get(ctx context.Context, id kernel.UUID) (*commerce.Commerce, error)

	// GetByType retrieves all commerces of one catalog type.
	GetByType(ctx context.Context, typeName string) ([]*commerce.Commerce, error)

	// GetFavorites retrieves the commerces a client has favorited.
	GetFavorites(ctx context.Context, clientID kernel.UUID) ([]*commerce.Commerce, error)

	// AddFavorite records a client's favorite. Idempotent.
	AddFavorite(ctx context.Context, clientID kernel.UUID, commerceID kernel.UUID) error

	// RemoveFavorite deletes a client's favorite. Idempotent.
	RemoveFavorite(ctx context.Context, clientID kernel.UUID, commerceID kernel.UUID) error
}
