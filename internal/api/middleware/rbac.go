package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/club-management/internal/core/domain"
)

// RBAC enforces role-based access control. Requests whose verified role is
// not in the allow-list are rejected; unknown or missing roles fall through
// to the same rejection.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
