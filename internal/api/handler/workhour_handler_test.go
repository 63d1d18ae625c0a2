package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushub/club-management/internal/api/middleware"
	"github.com/campushub/club-management/internal/core/domain"
	"github.com/campushub/club-management/internal/core/ports"
)

type stubWorkHourService struct {
	submitted *ports.SubmitWorkHourInput
	decided   *ports.DecideInput
	record    *domain.WorkHour
	list      []*domain.WorkHour
	err       error
}

func (s *stubWorkHourService) Submit(_ context.Context, input ports.SubmitWorkHourInput) (*domain.WorkHour, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.submitted = &input
	return s.record, nil
}

func (s *stubWorkHourService) Decide(_ context.Context, input ports.DecideInput) (*domain.WorkHour, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.decided = &input
	return s.record, nil
}

func (s *stubWorkHourService) List(_ context.Context, _ domain.Claims, _ string) ([]*domain.WorkHour, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func setClaims(c echo.Context, claims domain.Claims) {
	c.Set(middleware.CtxUserID, claims.UserID)
	c.Set(middleware.CtxUsername, claims.Username)
	c.Set(middleware.CtxRole, string(claims.Role))
	c.Set(middleware.CtxClubID, claims.ClubID)
}

func TestWorkHourSubmitHandler(t *testing.T) {
	svc := &stubWorkHourService{record: &domain.WorkHour{
		ID:          "w1",
		SubmitterID: "u1",
		ClubID:      "c1",
		Hours:       "3",
		Status:      domain.StatusPending,
		SubmitTime:  time.Now().UTC(),
	}}
	h := NewWorkHourHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/work-hours",
		`{"activity_name":"cleanup","hours":"3"}`)
	c.Request().Header.Set("Idempotency-Key", "req-1")
	setClaims(c, domain.Claims{UserID: "u1", Username: "alice", Role: domain.RoleStudent, ClubID: "c1"})

	if err := h.Submit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.submitted.Claims.UserID != "u1" || svc.submitted.Claims.Role != domain.RoleStudent {
		t.Errorf("claims not forwarded: %+v", svc.submitted.Claims)
	}
	if svc.submitted.IdempotencyKey != "req-1" {
		t.Errorf("idempotency key not forwarded, got %q", svc.submitted.IdempotencyKey)
	}

	var resp workHourResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID != "w1" || resp.Status != "pending" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.ApproveTime != nil {
		t.Error("pending record must not expose an approve time")
	}
}

func TestWorkHourSubmitHandlerValidation(t *testing.T) {
	h := NewWorkHourHandler(&stubWorkHourService{})

	for _, body := range []string{`{}`, `{"activity_name":"x"}`, `{"activity_name":"x","hours":"three"}`} {
		c, _ := newTestContext(http.MethodPost, "/api/work-hours", body)
		setClaims(c, domain.Claims{UserID: "u1", Role: domain.RoleStudent})
		err := h.Submit(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %v", body, err)
		}
	}
}

func TestWorkHourSubmitHandlerRequiresClaims(t *testing.T) {
	h := NewWorkHourHandler(&stubWorkHourService{})

	c, _ := newTestContext(http.MethodPost, "/api/work-hours", `{"activity_name":"x","hours":"1"}`)
	err := h.Submit(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestWorkHourDecideHandler(t *testing.T) {
	approveTime := time.Now().UTC()
	svc := &stubWorkHourService{record: &domain.WorkHour{
		ID:          "w1",
		Status:      domain.StatusApproved,
		ApproverID:  "ca1",
		ApproveTime: approveTime,
	}}
	h := NewWorkHourHandler(svc)

	c, rec := newTestContext(http.MethodPut, "/api/work-hours/w1/approve", `{"status":"approved"}`)
	c.SetParamNames("id")
	c.SetParamValues("w1")
	setClaims(c, domain.Claims{UserID: "ca1", Role: domain.RoleClubAdmin, ClubID: "c1"})

	if err := h.Decide(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.decided.RecordID != "w1" || svc.decided.Status != "approved" {
		t.Errorf("decision not forwarded: %+v", svc.decided)
	}

	var resp workHourResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "approved" || resp.ApproverID != "ca1" || resp.ApproveTime == nil {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestWorkHourDecideHandlerRejectsBadStatus(t *testing.T) {
	h := NewWorkHourHandler(&stubWorkHourService{})

	c, _ := newTestContext(http.MethodPut, "/api/work-hours/w1/approve", `{"status":"cancelled"}`)
	c.SetParamNames("id")
	c.SetParamValues("w1")
	setClaims(c, domain.Claims{UserID: "ca1", Role: domain.RoleClubAdmin})

	err := h.Decide(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestWorkHourListHandler(t *testing.T) {
	svc := &stubWorkHourService{list: []*domain.WorkHour{
		{ID: "w1", Status: domain.StatusPending, SubmitTime: time.Now().UTC()},
		{ID: "w2", Status: domain.StatusApproved, SubmitTime: time.Now().UTC()},
	}}
	h := NewWorkHourHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/api/work-hours", "")
	setClaims(c, domain.Claims{UserID: "sa1", Role: domain.RoleSchoolAdmin})

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp workHourListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 records, got %d", len(resp.Data))
	}
}

func TestWorkHourListHandlerEmpty(t *testing.T) {
	h := NewWorkHourHandler(&stubWorkHourService{list: []*domain.WorkHour{}})

	c, rec := newTestContext(http.MethodGet, "/api/work-hours", "")
	setClaims(c, domain.Claims{UserID: "u1", Role: domain.RoleStudent})

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Empty list must serialize as [] rather than null.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if string(raw["data"]) != "[]" {
		t.Errorf("expected empty array, got %s", raw["data"])
	}
}
