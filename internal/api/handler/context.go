package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both user id and role
// must be present (presence proves the middleware ran), and the role must
// still parse against the closed enum.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)
	if userID == "" || roleStr == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, parseErr := domain.ParseRole(roleStr)
	if parseErr != nil {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "invalid role claim")
	}

	return userID, role, nil
}
