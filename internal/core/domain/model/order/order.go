package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// TaxRateMin and TaxRateMax bound the configurable sales tax percentage
// an order may carry.
const (
	TaxRateMin float64 = 0
	TaxRateMax float64 = 50
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrLineItemsAreRequired is returned when creating an order with no line items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("line items")

	// ErrNotOrderCourier is returned when a courier tries to complete an order
	// claimed by somebody else.
	ErrNotOrderCourier = errs.NewConflictError("order belongs to another courier")

	// ErrOrderAlreadyClaimed is returned when assigning a courier to an order
	// that already has one.
	ErrOrderAlreadyClaimed = errs.NewConflictError("order already has a courier")
)

// Order represents a single-commerce purchase in the marketplace. It is the
// aggregate root that manages the order lifecycle from checkout through
// courier claim to completion.
//
// Order maintains these invariants:
//   - All entity references (client, commerce, address) are valid UUIDs
//   - There is at least one line item
//   - taxRate lies within [TaxRateMin, TaxRateMax]
//   - total = subtotal + taxAmount, where taxAmount is the half-up rounded
//     taxRate percentage of the subtotal
//   - Status transitions follow the Pending -> InProgress -> Completed flow
//   - A courier is present exactly when the status requires one
//
// Monetary fields are snapshots: the subtotal is computed from the cart's
// add-time prices, not re-read from the catalog at checkout. Orders are
// never deleted; they are mutated only by Assign and Complete.
type Order struct {
	id         kernel.UUID
	clientID   kernel.UUID
	commerceID kernel.UUID
	addressID  kernel.UUID

	lineItems []LineItem

	subtotal  kernel.Money
	taxRate   float64
	taxAmount kernel.Money
	total     kernel.Money

	status    Status
	courierID *kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no courier.
//
// The tax amount and total are derived here and nowhere else:
// taxAmount = subtotal x taxRate / 100 rounded half-up to the cent,
// total = subtotal + taxAmount.
//
// Parameters:
//   - id: unique identifier for the order
//   - clientID: the ordering client
//   - commerceID: the commerce all line items belong to
//   - addressID: the delivery address chosen at checkout
//   - lineItems: at least one product position
//   - subtotal: sum of price x quantity over the cart partition
//   - taxRate: sales tax percentage within [TaxRateMin, TaxRateMax]
//
// Returns the created order, or a validation error if any parameter is
// invalid.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	commerceID kernel.UUID,
	addressID kernel.UUID,
	lineItems []LineItem,
	subtotal kernel.Money,
	taxRate float64,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setCommerceID(commerceID),
		o.setAddressID(addressID),
		o.setLineItems(lineItems),
		o.setTaxRate(taxRate),
	); err != nil {
		return nil, err
	}

	o.subtotal = subtotal
	o.taxAmount = subtotal.PercentHalfUp(taxRate)
	o.total = o.subtotal.Add(o.taxAmount)

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage without
// recomputing derived amounts. It validates structural invariants,
// including consistency between status and courier assignment, and the
// total = subtotal + taxAmount invariant.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	commerceID kernel.UUID,
	addressID kernel.UUID,
	lineItems []LineItem,
	subtotal kernel.Money,
	taxRate float64,
	taxAmount kernel.Money,
	total kernel.Money,
	status Status,
	courierID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setCommerceID(commerceID),
		o.setAddressID(addressID),
		o.setLineItems(lineItems),
		o.setTaxRate(taxRate),
		status.Validate(),
		status.ValidateCanHaveCourier(courierID != nil),
	); err != nil {
		return nil, err
	}

	if !subtotal.Add(taxAmount).IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total is invalid",
			fmt.Errorf("total %s does not equal subtotal %s plus tax %s", total, subtotal, taxAmount))
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}

	o.subtotal = subtotal
	o.taxAmount = taxAmount
	o.total = total
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed through one
// of the factory methods. Call it when reconstructing orders from
// persistence to guarantee data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the ordering client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// CommerceID returns the commerce the order was placed with.
func (o *Order) CommerceID() kernel.UUID {
	return o.commerceID
}

// AddressID returns the delivery address identifier.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// LineItems returns a copy of the order's product positions.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// Subtotal returns the pre-tax amount.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// TaxRate returns the sales tax percentage applied at checkout.
func (o *Order) TaxRate() float64 {
	return o.taxRate
}

// TaxAmount returns the computed tax amount.
func (o *Order) TaxAmount() kernel.Money {
	return o.taxAmount
}

// Total returns subtotal plus tax.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the claiming courier's ID, or nil if unclaimed.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Assign claims the order for a courier and moves it to InProgress.
//
// Business rules:
//   - The courier ID must be valid
//   - The order must be Pending with no courier; a second claim conflicts
//
// Note that in-memory Assign is only half the story: the repository claim
// is a conditional update on (status, courier_id) so that concurrent
// couriers racing for the same order resolve to exactly one winner.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID != nil {
		return ErrOrderAlreadyClaimed
	}

	newStatus, err := o.status.Take()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Complete marks the order as delivered.
//
// Business rules:
//   - The order must be InProgress
//   - Only the claiming courier may complete it (ownership check)
//
// Violations are conflicts: they are reported to the actor and leave the
// order unchanged.
func (o *Order) Complete(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return ErrNotOrderCourier
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setCommerceID(commerceID kernel.UUID) error {
	if err := commerceID.Validate(); err != nil {
		return err
	}
	o.commerceID = commerceID
	return nil
}

func (o *Order) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	o.addressID = addressID
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}
	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}

func (o *Order) setTaxRate(taxRate float64) error {
	if taxRate < TaxRateMin || taxRate > TaxRateMax {
		return errs.NewValueIsOutOfRangeError("taxRate", taxRate, TaxRateMin, TaxRateMax)
	}
	o.taxRate = taxRate
	return nil
}
