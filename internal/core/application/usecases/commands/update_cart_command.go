package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateCartCommandIsNotConstructed = errors.New(
	"UpdateCartCommand must be created via NewUpdateCartCommand constructor",
)

// CartAction is the mutation a client requests on one cart position.
type CartAction int

const (
	CartActionUnknown CartAction = iota

	// CartActionAdd puts the product in the cart, or bumps its quantity
	// when it is already there.
	CartActionAdd

	// CartActionIncrement raises an existing position's quantity by one.
	CartActionIncrement

	// CartActionDecrement lowers an existing position's quantity by one,
	// dropping the position at zero.
	CartActionDecrement

	// CartActionRemove drops the position regardless of quantity.
	CartActionRemove
)

// CartActionFromString parses the wire representation of a cart action.
func CartActionFromString(s string) (CartAction, error) {
	switch s {
	case "add":
		return CartActionAdd, nil
	case "increment":
		return CartActionIncrement, nil
	case "decrement":
		return CartActionDecrement, nil
	case "remove":
		return CartActionRemove, nil
	}
	return CartActionUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("action: unknown value %q", s))
}

// Validate checks that the action is one of the defined values.
func (a CartAction) Validate() error {
	switch a {
	case CartActionAdd, CartActionIncrement, CartActionDecrement, CartActionRemove:
		return nil
	}
	return errs.NewValueIsInvalidError(fmt.Sprintf("action: unknown value %d", int(a)))
}

// UpdateCartCommand represents one mutation of a session cart: which
// session, which product, and what to do with it.
type UpdateCartCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	productID kernel.UUID
	action    CartAction

	guard guard.ConstructorGuard
}

// NewUpdateCartCommand creates a command to mutate a session cart.
// Validates that the session ID is present, the product ID is valid and
// the action is known.
func NewUpdateCartCommand(sessionID string, productID kernel.UUID, action CartAction) (UpdateCartCommand, error) {
	cmd := UpdateCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
		cmd.setAction(action),
	); err != nil {
		return UpdateCartCommand{}, err
	}

	return cmd, nil
}

// SessionID returns the session whose cart is mutated.
func (c *UpdateCartCommand) SessionID() string {
	return c.sessionID
}

// ProductID returns the product the action targets.
func (c *UpdateCartCommand) ProductID() kernel.UUID {
	return c.productID
}

// Action returns the requested mutation.
func (c *UpdateCartCommand) Action() CartAction {
	return c.action
}

// Validate ensures the command was created through the constructor.
func (c *UpdateCartCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartCommandIsNotConstructed)
}

func (c *UpdateCartCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}
	c.sessionID = sessionID
	return nil
}

func (c *UpdateCartCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *UpdateCartCommand) setAction(action CartAction) error {
	if err := action.Validate(); err != nil {
		return err
	}
	c.action = action
	return nil
}
