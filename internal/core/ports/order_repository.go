package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByClient retrieves all orders placed by a client, newest first.
	GetByClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error)

	// GetAllInPendingStatus retrieves unclaimed orders couriers can take,
	// oldest first.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)

	// GetActiveByCourier retrieves the courier's InProgress order, if any.
	// Returns errs.ErrObjectNotFound when the courier has no active order.
	GetActiveByCourier(ctx context.Context, courierID kernel.UUID) (*order.Order, error)

	// Claim atomically assigns a courier to a pending, unclaimed order and
	// moves it to InProgress. The update is conditional on the stored row
	// still being pending with no courier, so when several couriers race
	// for the same order exactly one Claim succeeds; the rest receive
	// errs.ErrConflict.
	Claim(ctx context.Context, orderID kernel.UUID, courierID kernel.UUID) error
}
