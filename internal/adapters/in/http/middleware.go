package http

import (
	"net/http"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// sessionCookieName is the cookie carrying the opaque session ID.
const sessionCookieName = "sid"

// sessionContextKey is where the resolved session lives in the echo
// context for the duration of one request.
const sessionContextKey = "marketplace.session"

// requireRole resolves the session cookie against the session store and
// rejects the request unless the session carries one of the given roles.
// Missing cookie, unknown session and wrong role all answer 401: the
// client learns only that it is not authorized for this route.
func (s *Server) requireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			cookie, err := ctx.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				return respondUnauthorized(ctx)
			}

			session, err := s.sessions.Get(ctx.Request().Context(), cookie.Value)
			if err != nil {
				return respondUnauthorized(ctx)
			}

			allowed := false
			for _, role := range roles {
				if session.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				return respondUnauthorized(ctx)
			}

			ctx.Set(sessionContextKey, session)
			return next(ctx)
		}
	}
}

// currentSession returns the session stored by requireRole. Handlers only
// run behind the middleware, so the zero value never escapes in practice.
func currentSession(ctx echo.Context) ports.Session {
	session, _ := ctx.Get(sessionContextKey).(ports.Session)
	return session
}

// sessionID returns the raw cookie value identifying the session, which
// also keys the session's cart.
func sessionID(ctx echo.Context) string {
	cookie, err := ctx.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func respondUnauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, errorResponse{
		Success: false,
		Errors:  []string{"authentication required"},
	})
}
