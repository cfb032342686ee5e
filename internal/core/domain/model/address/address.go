// Package address implements delivery addresses owned by client accounts.
package address

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address")

// Address is a named delivery destination belonging to a client. Orders
// reference an address by ID; the address text itself is free-form.
type Address struct {
	id          kernel.UUID
	clientID    kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewAddress creates an address owned by the given client.
func NewAddress(id kernel.UUID, clientID kernel.UUID, name string, description string) (*Address, error) {
	a := &Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setClientID(clientID),
		a.setName(name),
		a.setDescription(description),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddress reconstructs an address from persistent storage.
func RestoreAddress(id kernel.UUID, clientID kernel.UUID, name string, description string) (*Address, error) {
	return NewAddress(id, clientID, name, description)
}

func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) ID() kernel.UUID {
	return a.id
}

func (a *Address) ClientID() kernel.UUID {
	return a.clientID
}

func (a *Address) Name() string {
	return a.name
}

func (a *Address) Description() string {
	return a.description
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	a.clientID = clientID
	return nil
}

func (a *Address) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Address) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	a.description = description
	return nil
}
