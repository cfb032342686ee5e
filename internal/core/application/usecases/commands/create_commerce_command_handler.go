package commands

import (
	"context"

	"marketplace/internal/core/domain/model/commerce"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// CreateCommerceCommandHandler registers a store in the catalog.
type CreateCommerceCommandHandler struct {
	commerceRepo ports.CommerceRepository
}

// NewCreateCommerceCommandHandler creates a handler for store registration.
func NewCreateCommerceCommandHandler(commerceRepo ports.CommerceRepository) CreateCommerceCommandHandler {
	return CreateCommerceCommandHandler{
		commerceRepo: commerceRepo,
	}
}

// Handle builds and persists the commerce, returning its new ID.
func (h CreateCommerceCommandHandler) Handle(ctx context.Context, command CreateCommerceCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	c, err := commerce.NewCommerce(
		kernel.NewUUID(),
		command.OwnerID(),
		command.Name(),
		command.Logo(),
		command.TypeName(),
		command.OpenTime(),
		command.CloseTime(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := h.commerceRepo.Add(ctx, c); err != nil {
		return kernel.UUID{}, err
	}

	return c.ID(), nil
}
