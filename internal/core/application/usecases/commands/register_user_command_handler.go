package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
)

// RegisterUserCommandHandler creates new accounts. Passwords are stored
// only as bcrypt hashes. Registering with the courier role also creates
// the courier's delivery profile so they can start taking orders right
// away.
type RegisterUserCommandHandler struct {
	userRepo    ports.UserRepository
	courierRepo ports.CourierRepository
}

// NewRegisterUserCommandHandler creates a handler for registrations.
func NewRegisterUserCommandHandler(userRepo ports.UserRepository, courierRepo ports.CourierRepository) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		userRepo:    userRepo,
		courierRepo: courierRepo,
	}
}

// Handle hashes the password, builds the account and persists it.
// A duplicate email surfaces from the repository as a conflict.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(command.Password()), bcrypt.DefaultCost)
	if err != nil {
		return kernel.UUID{}, err
	}

	u, err := user.NewUser(
		kernel.NewUUID(),
		command.Name(),
		command.Email(),
		command.Phone(),
		hash,
		command.Role(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := h.userRepo.Add(ctx, u); err != nil {
		return kernel.UUID{}, err
	}

	if u.Role() == user.RoleCourier {
		c, err := courier.NewCourier(u.ID(), u.Name(), u.Phone())
		if err != nil {
			return kernel.UUID{}, err
		}
		if err := h.courierRepo.Add(ctx, c); err != nil {
			return kernel.UUID{}, err
		}
	}

	return u.ID(), nil
}
