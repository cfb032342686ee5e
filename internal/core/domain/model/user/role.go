package user

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role defines what a user can do in the marketplace. Every account has
// exactly one role, fixed at registration.
type Role int

const (
	RoleUnknown Role = iota

	// RoleClient browses commerces, fills a cart and places orders.
	RoleClient

	// RoleCourier claims pending orders and delivers them.
	RoleCourier

	// RoleCommerce owns a catalog and receives orders.
	RoleCommerce

	// RoleAdmin manages marketplace settings.
	RoleAdmin
)

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	switch r {
	case RoleClient, RoleCourier, RoleCommerce, RoleAdmin:
		return nil
	}
	return errs.NewValueIsInvalidError(fmt.Sprintf("role: unknown value %d", int(r)))
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "client":
		return RoleClient, nil
	case "courier":
		return RoleCourier, nil
	case "commerce":
		return RoleCommerce, nil
	case "admin":
		return RoleAdmin, nil
	}
	return RoleUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("role: unknown value %q", s))
}

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleCourier:
		return "courier"
	case RoleCommerce:
		return "commerce"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}
