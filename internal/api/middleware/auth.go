package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

// Auth resolves the bearer token to a live session plus profile before any
// handler runs, and injects the resolved identity into context. Resolution
// is fail-closed: a valid token whose session was revoked or whose profile
// is missing yields 401, never a partial identity.
func Auth(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}

			state := sessions.Resolve(c.Request().Context(), token)
			if !state.Authenticated {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			c.Set("user_id", state.User.ID)
			c.Set("email", state.User.Email)
			c.Set("name", state.User.Name)
			c.Set("role", string(state.User.Role))

			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
