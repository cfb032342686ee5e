package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateCommerceCommandIsNotConstructed = errors.New(
	"CreateCommerceCommand must be created via NewCreateCommerceCommand constructor",
)

// CreateCommerceCommand represents a commerce-role user setting up their
// store profile in the catalog.
type CreateCommerceCommand struct { //nolint:recvcheck //using for validation
	ownerID   kernel.UUID
	name      string
	logo      string
	typeName  string
	openTime  string
	closeTime string

	guard guard.ConstructorGuard
}

// NewCreateCommerceCommand creates a command to register a commerce.
func NewCreateCommerceCommand(
	ownerID kernel.UUID,
	name string,
	logo string,
	typeName string,
	openTime string,
	closeTime string,
) (CreateCommerceCommand, error) {
	cmd := CreateCommerceCommand{
		logo:      logo,
		openTime:  openTime,
		closeTime: closeTime,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setName(name),
		cmd.setTypeName(typeName),
	); err != nil {
		return CreateCommerceCommand{}, err
	}

	return cmd, nil
}

// OwnerID returns the owning account.
func (c *CreateCommerceCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the store name.
func (c *CreateCommerceCommand) Name() string {
	return c.name
}

// Logo returns the store logo path.
func (c *CreateCommerceCommand) Logo() string {
	return c.logo
}

// TypeName returns the catalog type.
func (c *CreateCommerceCommand) TypeName() string {
	return c.typeName
}

// OpenTime returns the display opening time.
func (c *CreateCommerceCommand) OpenTime() string {
	return c.openTime
}

// CloseTime returns the display closing time.
func (c *CreateCommerceCommand) CloseTime() string {
	return c.closeTime
}

// Validate ensures the command was created through the constructor.
func (c *CreateCommerceCommand) Validate() error {
	return c.guard.Validate(ErrCreateCommerceCommandIsNotConstructed)
}

func (c *CreateCommerceCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateCommerceCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCommerceCommand) setTypeName(typeName string) error {
	if typeName == "" {
		return errs.NewValueIsRequiredError("typeName")
	}
	c.typeName = typeName
	return nil
}
