package commands

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so the response does not reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAccountInactive is returned when the password is right but the
// account has been deactivated. Unlike ErrInvalidCredentials the message
// is specific: the caller proved account ownership.
var ErrAccountInactive = errors.New("account is deactivated")

// LoginResult is the opened session: the opaque ID handed to the client as
// a cookie plus the account it authenticates.
type LoginResult struct {
	SessionID string
	UserID    kernel.UUID
	Role      user.Role
}

// LoginCommandHandler verifies credentials and opens a session in the
// session store.
type LoginCommandHandler struct {
	userRepo     ports.UserRepository
	sessionStore ports.SessionStore
}

// NewLoginCommandHandler creates a handler for logins.
func NewLoginCommandHandler(userRepo ports.UserRepository, sessionStore ports.SessionStore) LoginCommandHandler {
	return LoginCommandHandler{
		userRepo:     userRepo,
		sessionStore: sessionStore,
	}
}

// Handle checks the password against the stored bcrypt hash and saves a
// fresh session keyed by a random opaque ID.
func (h LoginCommandHandler) Handle(ctx context.Context, command LoginCommand) (LoginResult, error) {
	if err := command.Validate(); err != nil {
		return LoginResult{}, err
	}

	email := strings.ToLower(strings.TrimSpace(command.Email()))
	u, err := h.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash(), []byte(command.Password())); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	if !u.IsActive() {
		return LoginResult{}, ErrAccountInactive
	}

	sessionID := kernel.NewUUID().String()
	session := ports.Session{
		UserID: u.ID(),
		Role:   u.Role(),
	}
	if err := h.sessionStore.Save(ctx, sessionID, session); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		SessionID: sessionID,
		UserID:    u.ID(),
		Role:      u.Role(),
	}, nil
}
