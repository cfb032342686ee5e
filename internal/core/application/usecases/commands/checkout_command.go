package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a client's request to turn their session cart
// into orders delivered to one of their saved addresses.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	clientID  kernel.UUID
	addressID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command for the given session,
// client and delivery address.
func NewCheckoutCommand(sessionID string, clientID kernel.UUID, addressID kernel.UUID) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setClientID(clientID),
		cmd.setAddressID(addressID),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// SessionID returns the session whose cart is checked out.
func (c *CheckoutCommand) SessionID() string {
	return c.sessionID
}

// ClientID returns the ordering client.
func (c *CheckoutCommand) ClientID() kernel.UUID {
	return c.clientID
}

// AddressID returns the chosen delivery address.
func (c *CheckoutCommand) AddressID() kernel.UUID {
	return c.addressID
}

// Validate ensures the command was created through the constructor.
func (c *CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c *CheckoutCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}
	c.sessionID = sessionID
	return nil
}

func (c *CheckoutCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *CheckoutCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	c.addressID = addressID
	return nil
}
