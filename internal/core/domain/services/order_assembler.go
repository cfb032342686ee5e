package services

import (
	"errors"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/settings"
)

// ErrCartIsEmpty is returned when checkout is attempted with no items in the cart.
var ErrCartIsEmpty = errors.New("cart is empty")

// OrderAssembler is a domain service that turns a session cart into orders.
//
// A cart may hold products from several commerces, but an order always belongs
// to exactly one commerce. Assemble partitions the cart items by commerce,
// preserving the order in which each commerce first appeared in the cart, and
// produces one order per partition. Each order's subtotal is the sum of its
// own line totals at the snapshotted prices; tax is derived from the current
// marketplace settings at a single rounding point inside the order itself.
type OrderAssembler struct{}

// NewOrderAssembler creates a new OrderAssembler instance.
func NewOrderAssembler() OrderAssembler {
	return OrderAssembler{}
}

// Assemble partitions the cart by commerce and builds one pending order per
// commerce. It does not mutate the cart; clearing it is the caller's business
// once the orders have been persisted.
func (a OrderAssembler) Assemble(
	c *cart.Cart,
	clientID kernel.UUID,
	addressID kernel.UUID,
	cfg *settings.Settings,
) ([]*order.Order, error) {
	if c == nil || c.IsEmpty() {
		return nil, ErrCartIsEmpty
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	type partition struct {
		commerceID kernel.UUID
		items      []order.LineItem
		subtotal   kernel.Money
	}

	var (
		parts []*partition
		index = make(map[string]*partition)
	)
	for _, item := range c.Items() {
		key := item.CommerceID().String()
		p, ok := index[key]
		if !ok {
			p = &partition{commerceID: item.CommerceID()}
			index[key] = p
			parts = append(parts, p)
		}

		lineItem, err := order.NewLineItem(item.ProductID(), item.Quantity())
		if err != nil {
			return nil, err
		}
		p.items = append(p.items, lineItem)
		p.subtotal = p.subtotal.Add(item.LineTotal())
	}

	orders := make([]*order.Order, 0, len(parts))
	for _, p := range parts {
		o, err := order.NewOrder(
			kernel.NewUUID(),
			clientID,
			p.commerceID,
			addressID,
			p.items,
			p.subtotal,
			cfg.TaxRate(),
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
