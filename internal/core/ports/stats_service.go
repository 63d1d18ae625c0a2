package ports

import (
	"context"

	"github.com/campushub/club-management/internal/core/domain"
)

// UserStats summarises the credential store for the dashboard.
type UserStats struct {
	Total  int
	ByRole map[string]int
}

// RecordStats summarises a record collection by status. TotalHours is only
// populated for work-hours: the sum of the hours field over approved
// records, with unparsable values counted as zero.
type RecordStats struct {
	Total      int
	Pending    int
	Approved   int
	Rejected   int
	Cancelled  int
	TotalHours float64
}

// StatsService derives dashboard aggregates. Read-only, recomputed on each
// call.
type StatsService interface {
	Users(ctx context.Context) (*UserStats, error)
	WorkHours(ctx context.Context, claims domain.Claims) (*RecordStats, error)
	Activities(ctx context.Context, claims domain.Claims) (*RecordStats, error)
}
