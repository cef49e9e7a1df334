package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

// RBAC enforces role-based access control. It is a pure check of the role
// resolved by Auth: when the role is outside the allow-list the request is
// rejected with 403 and the handler never runs.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
