package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// SetFavoriteCommandHandler records or removes a client's favorite. The
// underlying relation writes are idempotent, so repeating a toggle in the
// same direction changes nothing.
type SetFavoriteCommandHandler struct {
	commerceRepo ports.CommerceRepository
}

// NewSetFavoriteCommandHandler creates a handler for favorite toggles.
func NewSetFavoriteCommandHandler(commerceRepo ports.CommerceRepository) SetFavoriteCommandHandler {
	return SetFavoriteCommandHandler{
		commerceRepo: commerceRepo,
	}
}

// Handle verifies the commerce exists and applies the toggle.
func (h SetFavoriteCommandHandler) Handle(ctx context.Context, command SetFavoriteCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if _, err := h.commerceRepo.Get(ctx, command.CommerceID()); err != nil {
		return err
	}

	if command.Favorite() {
		return h.commerceRepo.AddFavorite(ctx, command.ClientID(), command.CommerceID())
	}
	return h.commerceRepo.RemoveFavorite(ctx, command.ClientID(), command.CommerceID())
}
