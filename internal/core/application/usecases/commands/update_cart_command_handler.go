package commands

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/ports"
)

// UpdateCartCommandHandler applies one cart mutation and saves the result
// back to the session store.
//
// Only the add action touches the catalog: it loads the product to copy its
// snapshot into the cart, so an unknown product fails with a not-found
// error. The other actions operate purely on the stored cart and treat an
// absent product as a no-op.
type UpdateCartCommandHandler struct {
	cartStore   ports.CartStore
	productRepo ports.ProductRepository
}

// NewUpdateCartCommandHandler creates a handler for cart mutations.
func NewUpdateCartCommandHandler(cartStore ports.CartStore, productRepo ports.ProductRepository) UpdateCartCommandHandler {
	return UpdateCartCommandHandler{
		cartStore:   cartStore,
		productRepo: productRepo,
	}
}

// Handle loads the session cart, applies the requested action and persists
// the updated cart. Returns the cart so the transport layer can echo the
// new state without a second read.
func (h UpdateCartCommandHandler) Handle(ctx context.Context, command UpdateCartCommand) (*cart.Cart, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	c, err := h.cartStore.Get(ctx, command.SessionID())
	if err != nil {
		return nil, err
	}

	switch command.Action() {
	case CartActionAdd:
		p, err := h.productRepo.Get(ctx, command.ProductID())
		if err != nil {
			return nil, err
		}
		if err := c.Add(p); err != nil {
			return nil, err
		}
	case CartActionIncrement:
		c.Increment(command.ProductID())
	case CartActionDecrement:
		c.Decrement(command.ProductID())
	case CartActionRemove:
		c.Remove(command.ProductID())
	}

	if err := h.cartStore.Save(ctx, command.SessionID(), c); err != nil {
		return nil, err
	}

	return c, nil
}
