package ports

import (
	"context"
	"time"

	"github.com/campushub/club-management/internal/core/domain"
)

// SubmitActivityInput carries all data for a new activity proposal.
type SubmitActivityInput struct {
	Claims          domain.Claims
	Name            string
	ClubID          string
	Description     string
	StartTime       time.Time
	EndTime         time.Time
	Location        string
	MaxParticipants int
	ActivityType    string
	IdempotencyKey  string
}

// ActivityService implements the submission workflow for activity records.
type ActivityService interface {
	Submit(ctx context.Context, input SubmitActivityInput) (*domain.Activity, error)
	Decide(ctx context.Context, input DecideInput) (*domain.Activity, error)
	// Cancel moves an activity to the cancelled terminal state. Allowed for
	// the organizer or anyone who could decide on the record, from pending
	// or approved only.
	Cancel(ctx context.Context, claims domain.Claims, recordID string) (*domain.Activity, error)
	List(ctx context.Context, claims domain.Claims, status string) ([]*domain.Activity, error)
	// Recent returns the newest activities by submit time, newest first.
	Recent(ctx context.Context, limit int) ([]*domain.Activity, error)
}
