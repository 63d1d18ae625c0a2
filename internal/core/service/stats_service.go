package service

import (
	"context"
	"strconv"

	"github.com/campushub/club-management/internal/core/domain"
	"github.com/campushub/club-management/internal/core/ports"
)

// StatsService derives dashboard aggregates from the underlying
// collections. It holds no state and recomputes on every call.
type StatsService struct {
	users      ports.UserRepository
	workHours  ports.WorkHourRepository
	activities ports.ActivityRepository
}

func NewStatsService(users ports.UserRepository, workHours ports.WorkHourRepository, activities ports.ActivityRepository) *StatsService {
	return &StatsService{users: users, workHours: workHours, activities: activities}
}

// Users counts stored users by role.
func (s *StatsService) Users(ctx context.Context) (*ports.UserStats, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.UserStats{Total: len(users), ByRole: make(map[string]int)}
	for _, u := range users {
		stats.ByRole[string(u.Role)]++
	}
	return stats, nil
}

// WorkHours aggregates the work-hour records visible to the caller:
// counts by status plus the sum of approved hours. Unparsable hour values
// count as zero.
func (s *StatsService) WorkHours(ctx context.Context, claims domain.Claims) (*ports.RecordStats, error) {
	scope := domain.ScopeFor(claims)
	if scope.DenyAll {
		return &ports.RecordStats{}, nil
	}

	records, err := s.workHours.List(ctx, ports.ListRecordsFilter{
		SubmitterID: scope.SubmitterID,
		ClubID:      scope.ClubID,
	})
	if err != nil {
		return nil, err
	}

	stats := &ports.RecordStats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusApproved:
			stats.Approved++
			stats.TotalHours += parseHours(r.Hours)
		case domain.StatusRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}

// Activities aggregates the activity records visible to the caller.
func (s *StatsService) Activities(ctx context.Context, claims domain.Claims) (*ports.RecordStats, error) {
	scope := domain.ScopeFor(claims)
	if scope.DenyAll {
		return &ports.RecordStats{}, nil
	}

	records, err := s.activities.List(ctx, ports.ListRecordsFilter{
		SubmitterID: scope.SubmitterID,
		ClubID:      scope.ClubID,
	})
	if err != nil {
		return nil, err
	}

	stats := &ports.RecordStats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusApproved:
			stats.Approved++
		case domain.StatusRejected:
			stats.Rejected++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

func parseHours(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
