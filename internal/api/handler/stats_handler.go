package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/club-management/internal/core/ports"
)

// StatsHandler serves the dashboard aggregates.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

type userStatsResponse struct {
	Total  int            `json:"total"`
	ByRole map[string]int `json:"by_role"`
}

type recordStatsResponse struct {
	Total      int     `json:"total"`
	Pending    int     `json:"pending"`
	Approved   int     `json:"approved"`
	Rejected   int     `json:"rejected"`
	Cancelled  int     `json:"cancelled,omitempty"`
	TotalHours float64 `json:"total_hours,omitempty"`
}

// Users handles GET /api/stats/users. Restricted by RBAC to admin roles.
//
// @Summary      User counts by role
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userStatsResponse
// @Router       /stats/users [get]
func (h *StatsHandler) Users(c echo.Context) error {
	stats, err := h.service.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userStatsResponse{Total: stats.Total, ByRole: stats.ByRole})
}

// WorkHours handles GET /api/stats/work-hours, scoped to the caller.
//
// @Summary      Work-hour counts by status plus approved hour total
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  recordStatsResponse
// @Router       /stats/work-hours [get]
func (h *StatsHandler) WorkHours(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	stats, err := h.service.WorkHours(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recordStatsResponse{
		Total:      stats.Total,
		Pending:    stats.Pending,
		Approved:   stats.Approved,
		Rejected:   stats.Rejected,
		TotalHours: stats.TotalHours,
	})
}

// Activities handles GET /api/stats/activities, scoped to the caller.
//
// @Summary      Activity counts by status
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  recordStatsResponse
// @Router       /stats/activities [get]
func (h *StatsHandler) Activities(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Activities(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recordStatsResponse{
		Total:     stats.Total,
		Pending:   stats.Pending,
		Approved:  stats.Approved,
		Rejected:  stats.Rejected,
		Cancelled: stats.Cancelled,
	})
}
