// Package commerce implements the Commerce entity: a store clients browse,
// favorite and order from. Commerces are grouped by a type name (restaurant,
// pharmacy, grocery) used for catalog navigation.
package commerce

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCommerceIsNotConstructed = errs.NewValueIsRequiredError("commerce")

// Commerce is a store in the marketplace catalog. It is owned by a user
// account with the commerce role; ownerID links the two.
type Commerce struct {
	id        kernel.UUID
	ownerID   kernel.UUID
	name      string
	logo      string
	typeName  string
	openTime  string
	closeTime string
	active    bool

	guard guard.ConstructorGuard
}

// NewCommerce creates an active commerce with a valid identity, owner and
// name. Open and close times are display strings, not parsed schedules.
// Deactivation hides a stored commerce from clients without deleting its
// catalog or order history.
func NewCommerce(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	logo string,
	typeName string,
	openTime string,
	closeTime string,
) (*Commerce, error) {
	c := &Commerce{
		logo:      logo,
		openTime:  openTime,
		closeTime: closeTime,
		active:    true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setOwnerID(ownerID),
		c.setName(name),
		c.setTypeName(typeName),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCommerce reconstructs a commerce from persistent storage.
func RestoreCommerce(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	logo string,
	typeName string,
	openTime string,
	closeTime string,
	active bool,
) (*Commerce, error) {
	c, err := NewCommerce(id, ownerID, name, logo, typeName, openTime, closeTime)
	if err != nil {
		return nil, err
	}
	c.active = active
	return c, nil
}

func (c *Commerce) Validate() error {
	if c == nil {
		return ErrCommerceIsNotConstructed
	}
	return c.guard.Validate(ErrCommerceIsNotConstructed)
}

func (c *Commerce) ID() kernel.UUID {
	return c.id
}

func (c *Commerce) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *Commerce) Name() string {
	return c.name
}

func (c *Commerce) Logo() string {
	return c.logo
}

func (c *Commerce) TypeName() string {
	return c.typeName
}

func (c *Commerce) OpenTime() string {
	return c.openTime
}

func (c *Commerce) CloseTime() string {
	return c.closeTime
}

// IsActive reports whether clients can see and order from the commerce.
func (c *Commerce) IsActive() bool {
	return c.active
}

func (c *Commerce) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Commerce) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *Commerce) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Commerce) setTypeName(typeName string) error {
	if strings.TrimSpace(typeName) == "" {
		return errs.NewValueIsRequiredError("typeName")
	}
	c.typeName = typeName
	return nil
}
