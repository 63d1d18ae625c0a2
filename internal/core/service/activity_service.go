package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campushub/club-management/internal/core/domain"
	"github.com/campushub/club-management/internal/core/ports"
)

const (
	defaultRecentLimit = 5
	maxRecentLimit     = 50
)

// ActivityService implements the submission workflow for activity
// proposals, including the cancelled terminal state.
type ActivityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, log: log}
}

// Submit creates a new activity proposal in pending state, organized by the
// caller.
func (s *ActivityService) Submit(ctx context.Context, input ports.SubmitActivityInput) (*domain.Activity, error) {
	if domain.ScopeFor(input.Claims).DenyAll {
		return nil, domain.ErrForbidden
	}

	if input.IdempotencyKey != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, input.IdempotencyKey)
		if err == nil && existing != nil {
			s.log.Info().Str("idempotency_key", input.IdempotencyKey).Str("id", existing.ID).Msg("idempotent replay")
			return existing, nil
		}
	}

	clubID := input.ClubID
	if clubID == "" {
		clubID = input.Claims.ClubID
	}

	record := &domain.Activity{
		ID:              uuid.NewString(),
		Name:            input.Name,
		ClubID:          clubID,
		OrganizerID:     input.Claims.UserID,
		Description:     input.Description,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Location:        input.Location,
		MaxParticipants: input.MaxParticipants,
		ActivityType:    input.ActivityType,
		Status:          domain.StatusPending,
		SubmitTime:      time.Now().UTC(),
		IdempotencyKey:  input.IdempotencyKey,
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		s.log.Error().Err(err).Msg("failed to insert activity record")
		return nil, err
	}

	s.log.Info().Str("id", record.ID).Str("organizer_id", record.OrganizerID).Str("club_id", record.ClubID).Msg("activity record submitted")
	return record, nil
}

// Decide applies an approval or rejection to a pending activity, with the
// same role gating and atomic pending-only semantics as for work-hours.
func (s *ActivityService) Decide(ctx context.Context, input ports.DecideInput) (*domain.Activity, error) {
	if !input.Claims.Role.CanDecide() {
		return nil, domain.ErrForbidden
	}

	status := domain.Status(input.Status)
	if !status.IsDecision() {
		return nil, fmt.Errorf("%w: cannot set status %q", domain.ErrInvalidTransition, input.Status)
	}

	record, err := s.repo.FindByID(ctx, input.RecordID)
	if err != nil {
		return nil, err
	}
	if !input.Claims.CanDecideClub(record.ClubID) {
		return nil, domain.ErrForbidden
	}

	reason := ""
	if status == domain.StatusRejected {
		reason = input.RejectReason
	}

	updated, err := s.repo.Decide(ctx, input.RecordID, ports.Decision{
		Status:       status,
		ApproverID:   input.Claims.UserID,
		RejectReason: reason,
		At:           time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("id", updated.ID).Str("status", string(updated.Status)).Str("approver_id", input.Claims.UserID).Msg("activity record decided")
	return updated, nil
}

// Cancel moves an activity to cancelled. Allowed for the organizer who
// submitted it or anyone who could decide on it, from pending or approved.
func (s *ActivityService) Cancel(ctx context.Context, claims domain.Claims, recordID string) (*domain.Activity, error) {
	record, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if !claims.CanCancelActivity(record) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.Cancel(ctx, recordID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("id", updated.ID).Str("user_id", claims.UserID).Msg("activity cancelled")
	return updated, nil
}

// List returns the activities visible to the caller. Unknown roles see an
// empty list.
func (s *ActivityService) List(ctx context.Context, claims domain.Claims, status string) ([]*domain.Activity, error) {
	scope := domain.ScopeFor(claims)
	if scope.DenyAll {
		return []*domain.Activity{}, nil
	}

	return s.repo.List(ctx, ports.ListRecordsFilter{
		SubmitterID: scope.SubmitterID,
		ClubID:      scope.ClubID,
		Status:      status,
	})
}

// Recent returns the newest activities by submission time. The limit
// defaults to 5 and is capped at 50.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
