package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the read contract for the commerce catalog.
// The cart flow reads single products to snapshot them; catalog browsing
// reads a commerce's products grouped by category in the query layer.
type ProductRepository interface {
	// Add persists a new catalog entry.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByCommerce retrieves all products of one commerce.
	GetByCommerce(ctx context.Context, commerceID kernel.UUID) ([]*product.Product, error)
}
