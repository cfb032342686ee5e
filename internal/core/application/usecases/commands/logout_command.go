package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand ends a session. The cart stored under the same session ID
// goes with it.
type LogoutCommand struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a logout command.
func NewLogoutCommand(sessionID string) (LogoutCommand, error) {
	if sessionID == "" {
		return LogoutCommand{}, errs.NewValueIsRequiredError("sessionID")
	}
	return LogoutCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// SessionID returns the session being ended.
func (c *LogoutCommand) SessionID() string {
	return c.sessionID
}

// Validate ensures the command was created through the constructor.
func (c *LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

// LogoutCommandHandler deletes the session and its cart. Both deletes are
// idempotent, so logging out twice is harmless.
type LogoutCommandHandler struct {
	sessionStore ports.SessionStore
	cartStore    ports.CartStore
}

// NewLogoutCommandHandler creates a handler for logouts.
func NewLogoutCommandHandler(sessionStore ports.SessionStore, cartStore ports.CartStore) LogoutCommandHandler {
	return LogoutCommandHandler{
		sessionStore: sessionStore,
		cartStore:    cartStore,
	}
}

// Handle ends the session.
func (h LogoutCommandHandler) Handle(ctx context.Context, command LogoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.cartStore.Delete(ctx, command.SessionID()); err != nil {
		return err
	}
	return h.sessionStore.Delete(ctx, command.SessionID())
}
