package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/campushub/club-management/internal/core/domain"
	"github.com/campushub/club-management/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository.
type stubUserRepo struct {
	users map[string]*domain.User // keyed by username
	err   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, ok := r.users[user.Username]; ok {
		return nil, domain.ErrUserExists
	}
	clone := *user
	r.users[user.Username] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

// stubThrottle is an in-memory LoginThrottle counting failures, locked once
// the counter reaches max.
type stubThrottle struct {
	failures map[string]int
	max      int
	allowErr error
}

func newStubThrottle(max int) *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), max: max}
}

func (t *stubThrottle) Allow(_ context.Context, username string) (bool, error) {
	if t.allowErr != nil {
		return false, t.allowErr
	}
	return t.failures[username] < t.max, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, username string) error {
	t.failures[username]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, username string) error {
	delete(t.failures, username)
	return nil
}

// stubWorkHourRepo is an in-memory ports.WorkHourRepository with the same
// pending-only decision semantics as the real store.
type stubWorkHourRepo struct {
	records map[string]*domain.WorkHour
	err     error
}

func newStubWorkHourRepo() *stubWorkHourRepo {
	return &stubWorkHourRepo{records: make(map[string]*domain.WorkHour)}
}

func (r *stubWorkHourRepo) Insert(_ context.Context, w *domain.WorkHour) error {
	if r.err != nil {
		return r.err
	}
	clone := *w
	r.records[w.ID] = &clone
	return nil
}

func (r *stubWorkHourRepo) FindByID(_ context.Context, id string) (*domain.WorkHour, error) {
	if r.err != nil {
		return nil, r.err
	}
	w, ok := r.records[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	clone := *w
	return &clone, nil
}

func (r *stubWorkHourRepo) FindByIdempotencyKey(_ context.Context, key string) (*domain.WorkHour, error) {
	for _, w := range r.records {
		if w.IdempotencyKey == key {
			clone := *w
			return &clone, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *stubWorkHourRepo) List(_ context.Context, filter ports.ListRecordsFilter) ([]*domain.WorkHour, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []*domain.WorkHour{}
	for _, w := range r.records {
		if filter.SubmitterID != "" && w.SubmitterID != filter.SubmitterID {
			continue
		}
		if filter.ClubID != "" && w.ClubID != filter.ClubID {
			continue
		}
		if filter.Status != "" && string(w.Status) != filter.Status {
			continue
		}
		clone := *w
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmitTime.After(out[j].SubmitTime) })
	return out, nil
}

func (r *stubWorkHourRepo) Decide(_ context.Context, id string, d ports.Decision) (*domain.WorkHour, error) {
	w, ok := r.records[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	if w.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: record %s is %s", domain.ErrInvalidTransition, id, w.Status)
	}
	w.Status = d.Status
	w.ApproverID = d.ApproverID
	w.RejectReason = d.RejectReason
	w.ApproveTime = d.At
	clone := *w
	return &clone, nil
}

// stubActivityRepo is an in-memory ports.ActivityRepository.
type stubActivityRepo struct {
	records map[string]*domain.Activity
	err     error
}

func newStubActivityRepo() *stubActivityRepo {
	return &stubActivityRepo{records: make(map[string]*domain.Activity)}
}

func (r *stubActivityRepo) Insert(_ context.Context, a *domain.Activity) error {
	if r.err != nil {
		return r.err
	}
	clone := *a
	r.records[a.ID] = &clone
	return nil
}

func (r *stubActivityRepo) FindByID(_ context.Context, id string) (*domain.Activity, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.records[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubActivityRepo) FindByIdempotencyKey(_ context.Context, key string) (*domain.Activity, error) {
	for _, a := range r.records {
		if a.IdempotencyKey == key {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *stubActivityRepo) List(_ context.Context, filter ports.ListRecordsFilter) ([]*domain.Activity, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []*domain.Activity{}
	for _, a := range r.records {
		if filter.SubmitterID != "" && a.OrganizerID != filter.SubmitterID {
			continue
		}
		if filter.ClubID != "" && a.ClubID != filter.ClubID {
			continue
		}
		if filter.Status != "" && string(a.Status) != filter.Status {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmitTime.After(out[j].SubmitTime) })
	return out, nil
}

func (r *stubActivityRepo) ListRecent(_ context.Context, limit int) ([]*domain.Activity, error) {
	all, err := r.List(context.Background(), ports.ListRecordsFilter{})
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *stubActivityRepo) Decide(_ context.Context, id string, d ports.Decision) (*domain.Activity, error) {
	a, ok := r.records[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	if a.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: record %s is %s", domain.ErrInvalidTransition, id, a.Status)
	}
	a.Status = d.Status
	a.ApproverID = d.ApproverID
	a.RejectReason = d.RejectReason
	a.ApproveTime = d.At
	clone := *a
	return &clone, nil
}

func (r *stubActivityRepo) Cancel(_ context.Context, id string, at time.Time) (*domain.Activity, error) {
	a, ok := r.records[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	if !a.Status.CanTransitionActivity(domain.StatusCancelled) {
		return nil, fmt.Errorf("%w: record %s is %s", domain.ErrInvalidTransition, id, a.Status)
	}
	a.Status = domain.StatusCancelled
	a.ApproveTime = at
	clone := *a
	return &clone, nil
}
