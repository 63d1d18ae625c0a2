package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/club-management/internal/api/middleware"
	"github.com/campushub/club-management/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: the user id and role
// must be present, which proves the middleware ran. Role validity is not
// checked here; downstream access scoping denies unknown roles.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	if userID == "" || role == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get(middleware.CtxUsername).(string)
	clubID, _ := c.Get(middleware.CtxClubID).(string)

	return domain.Claims{
		UserID:   userID,
		Username: username,
		Role:     domain.Role(role),
		ClubID:   clubID,
	}, nil
}
