package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)

	// ErrPasswordIsTooShort is returned for passwords under eight characters.
	ErrPasswordIsTooShort = errs.NewValueIsInvalidError("password must be at least 8 characters")
)

const minPasswordLength = 8

// RegisterUserCommand represents a request to create a new account of any
// role. The password crosses the application layer in plaintext exactly
// once, here, and is hashed before anything is persisted.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	phone    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command. Validates the
// password length and role here; name and email rules live in the user
// aggregate.
func NewRegisterUserCommand(name, email, phone, password string, role user.Role) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		name:  name,
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Name returns the submitted display name.
func (c *RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the submitted email.
func (c *RegisterUserCommand) Email() string {
	return c.email
}

// Phone returns the submitted phone number.
func (c *RegisterUserCommand) Phone() string {
	return c.phone
}

// Password returns the plaintext password for hashing.
func (c *RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested account role.
func (c *RegisterUserCommand) Role() user.Role {
	return c.role
}

// Validate ensures the command was created through the constructor.
func (c *RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
