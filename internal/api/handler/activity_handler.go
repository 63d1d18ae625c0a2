package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campushub/club-management/internal/api/metrics"
	"github.com/campushub/club-management/internal/core/domain"
	"github.com/campushub/club-management/internal/core/ports"
)

// ActivityHandler handles HTTP requests for activity records.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List handles GET /api/activities, scoped to the caller's role.
//
// @Summary      List activity records visible to the caller
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  activityListResponse
// @Failure      401     {object}  errorResponse
// @Router       /activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), claims, c.QueryParam("status"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toActivityListResponse(records))
}

// Submit handles POST /api/activities, creating a pending proposal.
//
// @Summary      Submit an activity proposal
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                 false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      submitActivityRequest  true   "Activity details"
// @Success      201              {object}  activityResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Router       /activities [post]
func (h *ActivityHandler) Submit(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req submitActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.service.Submit(c.Request().Context(), ports.SubmitActivityInput{
		Claims:          claims,
		Name:            req.Name,
		ClubID:          req.ClubID,
		Description:     req.Description,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
		ActivityType:    req.ActivityType,
		IdempotencyKey:  c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	metrics.SubmissionsTotal.WithLabelValues("activities").Inc()
	return c.JSON(http.StatusCreated, toActivityResponse(record))
}

// Decide handles PUT /api/activities/:id/approve.
//
// @Summary      Approve or reject a pending activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Record id"
// @Param        body  body      decideRequest  true  "Decision"
// @Success      200   {object}  activityResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /activities/{id}/approve [put]
func (h *ActivityHandler) Decide(c echo.Context) error {
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

	metrics.DecisionsTotal.WithLabelValues("activities", string(record.Status)).Inc()
	return c.JSON(http.StatusOK, toActivityResponse(record))
}

// Cancel handles PUT /api/activities/:id/cancel.
//
// @Summary      Cancel a pending or approved activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  activityResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /activities/{id}/cancel [put]
func (h *ActivityHandler) Cancel(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	record, err := h.service.Cancel(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.DecisionsTotal.WithLabelValues("activities", string(record.Status)).Inc()
	return c.JSON(http.StatusOK, toActivityResponse(record))
}

// Recent handles GET /api/recent-activities.
//
// @Summary      List the most recent activity records
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries (default 5, cap 50)"
// @Success      200    {object}  activityListResponse
// @Router       /recent-activities [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	records, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toActivityListResponse(records))
}

func toActivityResponse(a *domain.Activity) activityResponse {
	resp := activityResponse{
		ID:                  a.ID,
		Name:                a.Name,
		ClubID:              a.ClubID,
		OrganizerID:         a.OrganizerID,
		Description:         a.Description,
		Location:            a.Location,
		MaxParticipants:     a.MaxParticipants,
		CurrentParticipants: a.CurrentParticipants,
		ActivityType:        a.ActivityType,
		Status:              string(a.Status),
		SubmitTime:          a.SubmitTime.UTC(),
		ApproverID:          a.ApproverID,
		RejectReason:        a.RejectReason,
	}
	if !a.StartTime.IsZero() {
		t := a.StartTime.UTC()
		resp.StartTime = &t
	}
	if !a.EndTime.IsZero() {
		t := a.EndTime.UTC()
		resp.EndTime = &t
	}
	if !a.ApproveTime.IsZero() {
		t := a.ApproveTime.UTC()
		resp.ApproveTime = &t
	}
	return resp
}

func toActivityListResponse(records []*domain.Activity) activityListResponse {
	items := make([]activityResponse, len(records))
	for i, a := range records {
		items[i] = toActivityResponse(a)
	}
	return activityListResponse{Data: items}
}
