package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a commerce adding an item to its catalog.
// The price arrives in currency units and is converted to cents once, when
// the product is built.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	commerceID   kernel.UUID
	ownerID      kernel.UUID
	name         string
	description  string
	price        float64
	photo        string
	categoryName string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog entry.
func NewCreateProductCommand(
	commerceID kernel.UUID,
	ownerID kernel.UUID,
	name string,
	description string,
	price float64,
	photo string,
	categoryName string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description:  description,
		photo:        photo,
		categoryName: categoryName,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCommerceID(commerceID),
		cmd.setOwnerID(ownerID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// CommerceID returns the owning commerce.
func (c *CreateProductCommand) CommerceID() kernel.UUID {
	return c.commerceID
}

// OwnerID returns the user requesting the addition.
func (c *CreateProductCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the product name.
func (c *CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description.
func (c *CreateProductCommand) Description() string {
	return c.description
}

// Price returns the price in currency units.
func (c *CreateProductCommand) Price() float64 {
	return c.price
}

// Photo returns the product image path.
func (c *CreateProductCommand) Photo() string {
	return c.photo
}

// CategoryName returns the category label, possibly empty.
func (c *CreateProductCommand) CategoryName() string {
	return c.categoryName
}

// Validate ensures the command was created through the constructor.
func (c *CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c *CreateProductCommand) setCommerceID(commerceID kernel.UUID) error {
	if err := commerceID.Validate(); err != nil {
		return err
	}
	c.commerceID = commerceID
	return nil
}

func (c *CreateProductCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError(fmt.Sprintf("price: must not be negative, got %v", price))
	}
	c.price = price
	return nil
}
