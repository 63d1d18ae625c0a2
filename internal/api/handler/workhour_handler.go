package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/club-management/internal/api/metrics"
	"github.com/campushub/club-management/internal/core/domain"
	"github.com/campushub/club-management/internal/core/ports"
)

// WorkHourHandler handles HTTP requests for work-hour records.
type WorkHourHandler struct {
	service ports.WorkHourService
}

func NewWorkHourHandler(service ports.WorkHourService) *WorkHourHandler {
	return &WorkHourHandler{service: service}
}

// List handles GET /api/work-hours, scoped to the caller's role.
//
// @Summary      List work-hour records visible to the caller
// @Tags         work-hours
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  workHourListResponse
// @Failure      401     {object}  errorResponse
// @Router       /work-hours [get]
func (h *WorkHourHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), claims, c.QueryParam("status"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toWorkHourListResponse(records))
}

// Submit handles POST /api/work-hours, creating a pending record.
//
// @Summary      Submit a work-hour record
// @Tags         work-hours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                 false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      submitWorkHourRequest  true   "Work-hour details"
// @Success      201              {object}  workHourResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Router       /work-hours [post]
func (h *WorkHourHandler) Submit(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req submitWorkHourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.service.Submit(c.Request().Context(), ports.SubmitWorkHourInput{
		Claims:         claims,
		ClubID:         req.ClubID,
		ActivityName:   req.ActivityName,
		ActivityType:   req.ActivityType,
		Hours:          req.Hours,
		Description:    req.Description,
		ActivityDate:   req.ActivityDate,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	metrics.SubmissionsTotal.WithLabelValues("work_hours").Inc()
	return c.JSON(http.StatusCreated, toWorkHourResponse(record))
}

// Decide handles PUT /api/work-hours/:id/approve.
//
// @Summary      Approve or reject a pending work-hour record
// @Tags         work-hours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Record id"
// @Param        body  body      decideRequest  true  "Decision"
// @Success      200   {object}  workHourResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /work-hours/{id}/approve [put]
func (h *WorkHourHandler) Decide(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req decideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.service.Decide(c.Request().Context(), ports.DecideInput{
		Claims:       claims,
		RecordID:     c.Param("id"),
		Status:       req.Status,
		RejectReason: req.RejectReason,
	})
	if err != nil {
		return err
	}

	metrics.DecisionsTotal.WithLabelValues("work_hours", string(record.Status)).Inc()
	return c.JSON(http.StatusOK, toWorkHourResponse(record))
}

func toWorkHourResponse(w *domain.WorkHour) workHourResponse {
	resp := workHourResponse{
		ID:           w.ID,
		SubmitterID:  w.SubmitterID,
		ClubID:       w.ClubID,
		ActivityName: w.ActivityName,
		ActivityType: w.ActivityType,
		Hours:        w.Hours,
		Description:  w.Description,
		ActivityDate: w.ActivityDate,
		Status:       string(w.Status),
		SubmitTime:   w.SubmitTime.UTC(),
		ApproverID:   w.ApproverID,
		RejectReason: w.RejectReason,
	}
	if !w.ApproveTime.IsZero() {
		t := w.ApproveTime.UTC()
		resp.ApproveTime = &t
	}
	return resp
}

func toWorkHourListResponse(records []*domain.WorkHour) workHourListResponse {
	items := make([]workHourResponse, len(records))
	for i, w := range records {
		items[i] = toWorkHourResponse(w)
	}
	return workHourListResponse{Data: items}
}
