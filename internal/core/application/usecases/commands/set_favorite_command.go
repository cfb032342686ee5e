package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrSetFavoriteCommandIsNotConstructed = errors.New(
	"SetFavoriteCommand must be created via NewSetFavoriteCommand constructor",
)

// SetFavoriteCommand toggles a commerce in a client's favorites list.
type SetFavoriteCommand struct { //nolint:recvcheck //using for validation
	clientID   kernel.UUID
	commerceID kernel.UUID
	favorite   bool

	guard guard.ConstructorGuard
}

// NewSetFavoriteCommand creates a command to favorite or unfavorite a
// commerce.
func NewSetFavoriteCommand(clientID kernel.UUID, commerceID kernel.UUID, favorite bool) (SetFavoriteCommand, error) {
	cmd := SetFavoriteCommand{
		favorite: favorite,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setCommerceID(commerceID),
	); err != nil {
		return SetFavoriteCommand{}, err
	}

	return cmd, nil
}

// ClientID returns the client whose favorites change.
func (c *SetFavoriteCommand) ClientID() kernel.UUID {
	return c.clientID
}

// CommerceID returns the commerce being toggled.
func (c *SetFavoriteCommand) CommerceID() kernel.UUID {
	return c.commerceID
}

// Favorite reports whether the commerce should end up favorited.
func (c *SetFavoriteCommand) Favorite() bool {
	return c.favorite
}

// Validate ensures the command was created through the constructor.
func (c *SetFavoriteCommand) Validate() error {
	return c.guard.Validate(ErrSetFavoriteCommandIsNotConstructed)
}

func (c *SetFavoriteCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *SetFavoriteCommand) setCommerceID(commerceID kernel.UUID) error {
	if err := commerceID.Validate(); err != nil {
		return err
	}
	c.commerceID = commerceID
	return nil
}
