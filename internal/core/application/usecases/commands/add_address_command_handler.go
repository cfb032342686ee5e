package commands

import (
	"context"

	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// AddAddressCommandHandler persists a client's new delivery address.
type AddAddressCommandHandler struct {
	addressRepo ports.AddressRepository
}

// NewAddAddressCommandHandler creates a handler for saving addresses.
func NewAddAddressCommandHandler(addressRepo ports.AddressRepository) AddAddressCommandHandler {
	return AddAddressCommandHandler{
		addressRepo: addressRepo,
	}
}

// Handle builds and persists the address, returning its new ID.
func (h AddAddressCommandHandler) Handle(ctx context.Context, command AddAddressCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	a, err := address.NewAddress(kernel.NewUUID(), command.ClientID(), command.Name(), command.Description())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := h.addressRepo.Add(ctx, a); err != nil {
		return kernel.UUID{}, err
	}

	return a.ID(), nil
}
