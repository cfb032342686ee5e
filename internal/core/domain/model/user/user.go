package user

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrUserIsNotConstructed = errs.NewValueIsRequiredError("user")

	// ErrEmailIsInvalid is returned when the email has no plausible shape.
	// Real verification happens by sending mail, not by regex.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email has invalid format")
)

// User is a marketplace account of any role. The password is stored only
// as a hash; hashing and verification are the application layer's concern
// so the domain never sees plaintext.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	passwordHash []byte
	role         Role
	active       bool

	guard guard.ConstructorGuard
}

// NewUser creates an active account with a normalized (lowercased,
// trimmed) email. Deactivation is an administrative action applied to
// stored accounts, so new accounts always start active.
func NewUser(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	passwordHash []byte,
	role Role,
) (*User, error) {
	u := &User{
		phone:  phone,
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs an account from persistent storage.
func RestoreUser(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	passwordHash []byte,
	role Role,
	active bool,
) (*User, error) {
	u, err := NewUser(id, name, email, phone, passwordHash, role)
	if err != nil {
		return nil, err
	}
	u.active = active
	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) PasswordHash() []byte {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

// IsActive reports whether the account may log in.
func (u *User) IsActive() bool {
	return u.active
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return ErrEmailIsInvalid
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash []byte) error {
	if len(passwordHash) == 0 {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
