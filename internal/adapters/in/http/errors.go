package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// respondError maps a domain error onto an HTTP response.
//
// Validation failures answer 400 with the full message list so a form can
// show every problem at once. Not-found answers a generic 404 without
// echoing identifiers. Conflicts answer 409; the state did not change and
// the client may refresh and retry. Anything unclassified is logged and
// answered with a generic 500.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		return ctx.JSON(http.StatusUnauthorized, errorResponse{
			Success: false,
			Errors:  []string{"invalid email or password"},
		})

	case errors.Is(err, commands.ErrAccountInactive):
		return ctx.JSON(http.StatusUnauthorized, errorResponse{
			Success: false,
			Errors:  []string{"account is deactivated"},
		})

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Success: false,
			Errors:  []string{"not found"},
		})

	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Success: false,
			Errors:  []string{conflictMessage(err)},
		})

	case errors.Is(err, services.ErrCartIsEmpty):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Success: false,
			Errors:  []string{"cart is empty"},
		})

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Success: false,
			Errors:  validationMessages(err),
		})

	default:
		slog.Error("unhandled error", "method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Success: false,
			Errors:  []string{"internal error"},
		})
	}
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Success: false,
		Errors:  []string{message},
	})
}

// validationMessages splits a joined validation error into one message per
// violated rule. errors.Join renders its children newline-separated, which
// is exactly the shape a form wants back.
func validationMessages(err error) []string {
	lines := strings.Split(err.Error(), "\n")
	messages := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			messages = append(messages, line)
		}
	}
	return messages
}

func conflictMessage(err error) string {
	var conflictErr *errs.ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Error()
	}
	return "conflict"
}
