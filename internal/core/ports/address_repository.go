package ports

import (
	"context"

	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for delivery addresses.
type AddressRepository interface {
	// Add persists a new address.
	Add(ctx context.Context, aggregate *address.Address) error

	// Get retrieves an address by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such address exists.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)

	// GetByClient retrieves all addresses owned by a client.
	GetByClient(ctx context.Context, clientID kernel.UUID) ([]*address.Address, error)

	// Remove deletes an address. Removing an absent address is a no-op.
	Remove(ctx context.Context, id kernel.UUID) error
}
