package cart

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
)

// Item is one cart position: a product snapshot plus a positive quantity.
// Name, price, photo, category and commerce are copied from the catalog at
// add-time; the catalog is not consulted again until checkout.
type Item struct {
	productID  kernel.UUID
	name       string
	price      kernel.Money
	photo      string
	category   string
	commerceID kernel.UUID
	quantity   int

	isConstructed bool
}

// NewItem creates an Item from a product snapshot with quantity 1.
func NewItem(p *product.Product) (*Item, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Item{
		productID:     p.ID(),
		name:          p.Name(),
		price:         p.Price(),
		photo:         p.Photo(),
		category:      p.CategoryName(),
		commerceID:    p.CommerceID(),
		quantity:      1,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an Item from the session store.
func RestoreItem(
	productID kernel.UUID,
	name string,
	price kernel.Money,
	photo string,
	category string,
	commerceID kernel.UUID,
	quantity int,
) (*Item, error) {
	if err := errors.Join(productID.Validate(), commerceID.Validate()); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &Item{
		productID:     productID,
		name:          name,
		price:         price,
		photo:         photo,
		category:      category,
		commerceID:    commerceID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the snapshotted product identifier.
func (i *Item) ProductID() kernel.UUID { return i.productID }

// Name returns the snapshotted product name.
func (i *Item) Name() string { return i.name }

// Price returns the snapshotted unit price.
func (i *Item) Price() kernel.Money { return i.price }

// Photo returns the snapshotted product image path.
func (i *Item) Photo() string { return i.photo }

// Category returns the snapshotted category name.
func (i *Item) Category() string { return i.category }

// CommerceID returns the commerce the product belongs to.
func (i *Item) CommerceID() kernel.UUID { return i.commerceID }

// Quantity returns the selected unit count, always positive.
func (i *Item) Quantity() int { return i.quantity }

// LineTotal returns price x quantity for this position.
func (i *Item) LineTotal() kernel.Money {
	return i.price.MulQuantity(i.quantity)
}

// Cart is the session-scoped list of selected items, ordered by insertion
// and keyed by product: each product appears at most once. An empty Cart is
// valid; it simply cannot be checked out.
//
// The cart owns no identity of its own. It lives in the session store until
// checkout converts it into orders, after which it is cleared.
type Cart struct {
	items []*Item
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// RestoreCart reconstructs a cart from persisted items, preserving order.
func RestoreCart(items []*Item) (*Cart, error) {
	c := &Cart{items: make([]*Item, 0, len(items))}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		c.items = append(c.items, item)
	}
	return c, nil
}

// Add puts a product into the cart. If the product is already present its
// quantity is incremented by one; otherwise a new position with quantity 1
// is appended from the product snapshot.
func (c *Cart) Add(p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if item := c.find(p.ID()); item != nil {
		item.quantity++
		return nil
	}

	item, err := NewItem(p)
	if err != nil {
		return err
	}
	c.items = append(c.items, item)
	return nil
}

// Increment raises the quantity of an existing position by one.
// Absent products are a no-op, mirroring Decrement and Remove.
func (c *Cart) Increment(productID kernel.UUID) {
	if item := c.find(productID); item != nil {
		item.quantity++
	}
}

// Decrement lowers the quantity of an existing position by one, removing
// the position entirely when it reaches zero.
func (c *Cart) Decrement(productID kernel.UUID) {
	item := c.find(productID)
	if item == nil {
		return
	}

	item.quantity--
	if item.quantity <= 0 {
		c.Remove(productID)
	}
}

// Remove deletes a position regardless of quantity. Removing an absent
// product is a no-op, which makes Remove idempotent.
func (c *Cart) Remove(productID kernel.UUID) {
	for idx, item := range c.items {
		if item.productID.IsEqual(productID) {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after checkout has persisted all orders.
func (c *Cart) Clear() {
	c.items = nil
}

// Subtotal returns the sum of price x quantity over all positions.
func (c *Cart) Subtotal() kernel.Money {
	var sum kernel.Money
	for _, item := range c.items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// TotalItems returns the sum of quantities over all positions.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.quantity
	}
	return total
}

// IsEmpty reports whether the cart has no positions.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns the cart positions in insertion order. The returned slice
// is a copy; the items themselves are shared and must not be mutated by
// callers.
func (c *Cart) Items() []*Item {
	items := make([]*Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) find(productID kernel.UUID) *Item {
	for _, item := range c.items {
		if item.productID.IsEqual(productID) {
			return item
		}
	}
	return nil
}
