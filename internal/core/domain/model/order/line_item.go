package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// LineItem is a value object recording one product position within an
// order: which product and how many units. Prices are not carried here;
// the order stores the aggregate subtotal computed from the cart snapshot
// at checkout time.
type LineItem struct {
	productID kernel.UUID
	quantity  int
}

// NewLineItem creates a LineItem with a valid product reference and a
// positive quantity.
func NewLineItem(productID kernel.UUID, quantity int) (LineItem, error) {
	var li LineItem

	if err := errors.Join(
		li.setProductID(productID),
		li.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return li, nil
}

// ProductID returns the referenced product identifier.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the ordered unit count.
func (li LineItem) Quantity() int {
	return li.quantity
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}
