package ports

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
)

// CartStore persists session carts keyed by session ID. Carts live in a
// fast store with a TTL rather than the relational database: they are
// session state, discarded on checkout or expiry.
type CartStore interface {
	// Get retrieves the cart for a session. A session with no saved cart
	// yields a new empty cart, not an error.
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)

	// Save persists the cart for a session, resetting its TTL.
	Save(ctx context.Context, sessionID string, c *cart.Cart) error

	// Delete discards the session's cart. Deleting an absent cart is a
	// no-op.
	Delete(ctx context.Context, sessionID string) error
}
