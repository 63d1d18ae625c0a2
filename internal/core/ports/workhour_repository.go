package ports

import (
	"context"
	"time"

	"github.com/campushub/club-management/internal/core/domain"
)

// ListRecordsFilter carries the query parameters for listing submitted
// records. SubmitterID and ClubID mirror the caller's access scope and are
// always enforced by the service layer.
type ListRecordsFilter struct {
	SubmitterID string // non-empty = only records submitted by this user
	ClubID      string // non-empty = only records of this club
	Status      string // optional: filter by record status
}

// Decision carries everything a repository needs to apply an approval or
// rejection transition.
type Decision struct {
	Status       domain.Status // approved or rejected
	ApproverID   string
	RejectReason string
	At           time.Time
}

// WorkHourRepository defines persistence operations for work-hour records.
type WorkHourRepository interface {
	Insert(ctx context.Context, w *domain.WorkHour) error
	FindByID(ctx context.Context, id string) (*domain.WorkHour, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.WorkHour, error)
	List(ctx context.Context, filter ListRecordsFilter) ([]*domain.WorkHour, error)
	// Decide atomically applies the decision to a record that is still
	// pending and returns the updated record. When the record exists but is
	// no longer pending it fails with domain.ErrInvalidTransition, so a
	// concurrent second decision can never overwrite the first.
	Decide(ctx context.Context, id string, d Decision) (*domain.WorkHour, error)
}

// ActivityRepository defines persistence operations for activity records.
type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.Activity) error
	FindByID(ctx context.Context, id string) (*domain.Activity, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Activity, error)
	List(ctx context.Context, filter ListRecordsFilter) ([]*domain.Activity, error)
	// ListRecent returns the newest records by submit time, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error)
	// Decide has the same pending-only atomic semantics as for work-hours.
	Decide(ctx context.Context, id string, d Decision) (*domain.Activity, error)
	// Cancel atomically moves a record from one of the allowed prior states
	// to cancelled; otherwise fails with domain.ErrInvalidTransition.
	Cancel(ctx context.Context, id string, at time.Time) (*domain.Activity, error)
}
