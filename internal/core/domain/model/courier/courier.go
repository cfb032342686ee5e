package courier

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrPhoneIsRequired is returned when creating a courier without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")

	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")

	// ErrCourierIsBusy is returned when a busy courier attempts to claim
	// another order. Couriers hold at most one order in progress.
	ErrCourierIsBusy = errs.NewConflictError("courier already has an order in progress")
)

// Courier represents a delivery courier account. It is an aggregate root
// tracking the courier's identity and availability.
//
// Business rules:
//   - A courier must have a name and a phone number
//   - A courier holds at most one order in progress at a time; the
//     availability flag enforces this and is re-checked inside the claim
//     transaction before any order is assigned
//
// New couriers start Available.
type Courier struct {
	id           kernel.UUID
	name         string
	phone        string
	availability Availability

	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier in the Available state.
func NewCourier(id kernel.UUID, name string, phone string) (*Courier, error) {
	c := &Courier{
		availability: Available,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistent storage.
func RestoreCourier(id kernel.UUID, name string, phone string, availability Availability) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		availability.Validate(),
	); err != nil {
		return nil, err
	}

	c.availability = availability
	return c, nil
}

// Validate ensures the Courier was created via a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact phone.
func (c *Courier) Phone() string {
	return c.phone
}

// Availability returns the courier's current availability.
func (c *Courier) Availability() Availability {
	return c.availability
}

// IsAvailable reports whether the courier may claim a new order.
func (c *Courier) IsAvailable() bool {
	return c.availability == Available
}

// MarkBusy flips the courier to Busy when claiming an order.
// A courier that is already Busy conflicts: at most one order in progress.
func (c *Courier) MarkBusy() error {
	if c.availability == Busy {
		return ErrCourierIsBusy
	}
	c.availability = Busy
	return nil
}

// MarkAvailable flips the courier back to Available after completing a
// delivery. Marking an already available courier is a no-op, which lets
// the reconciliation job repair state without special cases.
func (c *Courier) MarkAvailable() {
	c.availability = Available
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
