package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAddAddressCommandIsNotConstructed = errors.New(
	"AddAddressCommand must be created via NewAddAddressCommand constructor",
)

// AddAddressCommand represents a client saving a new delivery address.
type AddAddressCommand struct { //nolint:recvcheck //using for validation
	clientID    kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewAddAddressCommand creates a command to save an address.
func NewAddAddressCommand(clientID kernel.UUID, name, description string) (AddAddressCommand, error) {
	cmd := AddAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setName(name),
		cmd.setDescription(description),
	); err != nil {
		return AddAddressCommand{}, err
	}

	return cmd, nil
}

// ClientID returns the owning client.
func (c *AddAddressCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the address label.
func (c *AddAddressCommand) Name() string {
	return c.name
}

// Description returns the address text.
func (c *AddAddressCommand) Description() string {
	return c.description
}

// Validate ensures the command was created through the constructor.
func (c *AddAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddAddressCommandIsNotConstructed)
}

func (c *AddAddressCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *AddAddressCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddAddressCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}
