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

// WorkHourService implements the submission workflow for work-hour records.
type WorkHourService struct {
	repo ports.WorkHourRepository
	log  zerolog.Logger
}

func NewWorkHourService(repo ports.WorkHourRepository, log zerolog.Logger) *WorkHourService {
	return &WorkHourService{repo: repo, log: log}
}

// Submit creates a new work-hour record in pending state. Any authenticated
// caller with a known role may submit. If an idempotency key is provided
// and already seen, the previously created record is returned without side
// effects.
func (s *WorkHourService) Submit(ctx context.Context, input ports.SubmitWorkHourInput) (*domain.WorkHour, error) {
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

	record := &domain.WorkHour{
		ID:             uuid.NewString(),
		SubmitterID:    input.Claims.UserID,
		ClubID:         clubID,
		ActivityName:   input.ActivityName,
		ActivityType:   input.ActivityType,
		Hours:          input.Hours,
		Description:    input.Description,
		ActivityDate:   input.ActivityDate,
		Status:         domain.StatusPending,
		SubmitTime:     time.Now().UTC(),
		IdempotencyKey: input.IdempotencyKey,
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		s.log.Error().Err(err).Msg("failed to insert work-hour record")
		return nil, err
	}

	s.log.Info().Str("id", record.ID).Str("submitter_id", record.SubmitterID).Str("club_id", record.ClubID).Msg("work-hour record submitted")
	return record, nil
}

// Decide applies an approval or rejection to a pending record. The access
// check runs before the transition: club-admins decide only for their own
// club, school-admins and admins for any. The repository applies the
// transition atomically, so a second decision on the same record fails with
// ErrInvalidTransition and leaves it unchanged.
func (s *WorkHourService) Decide(ctx context.Context, input ports.DecideInput) (*domain.WorkHour, error) {
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

	s.log.Info().Str("id", updated.ID).Str("status", string(updated.Status)).Str("approver_id", input.Claims.UserID).Msg("work-hour record decided")
	return updated, nil
}

// List returns the records visible to the caller. Unknown roles see an
// empty list.
func (s *WorkHourService) List(ctx context.Context, claims domain.Claims, status string) ([]*domain.WorkHour, error) {
	scope := domain.ScopeFor(claims)
	if scope.DenyAll {
		return []*domain.WorkHour{}, nil
	}

	return s.repo.List(ctx, ports.ListRecordsFilter{
		SubmitterID: scope.SubmitterID,
		ClubID:      scope.ClubID,
		Status:      status,
	})
}
