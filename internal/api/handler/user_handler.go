package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/club-management/internal/core/domain"
	"github.com/campushub/club-management/internal/core/ports"
)

// UserHandler serves user and club reference data.
type UserHandler struct {
	users ports.UserRepository
	clubs ports.ClubRepository
}

func NewUserHandler(users ports.UserRepository, clubs ports.ClubRepository) *UserHandler {
	return &UserHandler{users: users, clubs: clubs}
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userSummary
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserSummary(user))
}

// ListClubs handles GET /api/clubs.
//
// @Summary      List all clubs
// @Tags         clubs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Club
// @Router       /clubs [get]
func (h *UserHandler) ListClubs(c echo.Context) error {
	clubs, err := h.clubs.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	if clubs == nil {
		clubs = []*domain.Club{}
	}
	return c.JSON(http.StatusOK, clubs)
}

// GetClub handles GET /api/clubs/:id.
//
// @Summary      Get a club by id
// @Tags         clubs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Club id"
// @Success      200  {object}  domain.Club
// @Failure      404  {object}  errorResponse
// @Router       /clubs/{id} [get]
func (h *UserHandler) GetClub(c echo.Context) error {
	club, err := h.clubs.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, club)
}
