package ports

import (
	"context"

	"github.com/campushub/club-management/internal/core/domain"
)

// SubmitWorkHourInput carries all data for a new work-hour submission.
type SubmitWorkHourInput struct {
	Claims         domain.Claims
	ClubID         string
	ActivityName   string
	ActivityType   string
	Hours          string
	Description    string
	ActivityDate   string
	IdempotencyKey string
}

// DecideInput carries an approval or rejection request.
type DecideInput struct {
	Claims       domain.Claims
	RecordID     string
	Status       string // "approved" or "rejected"
	RejectReason string
}

// WorkHourService implements the submission workflow for work-hour records.
type WorkHourService interface {
	Submit(ctx context.Context, input SubmitWorkHourInput) (*domain.WorkHour, error)
	Decide(ctx context.Context, input DecideInput) (*domain.WorkHour, error)
	// List returns the records visible to the caller under its access scope.
	List(ctx context.Context, claims domain.Claims, status string) ([]*domain.WorkHour, error)
}
