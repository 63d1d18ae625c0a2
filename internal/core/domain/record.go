package domain

import "time"

// Status represents the lifecycle state of a submitted record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// workHourTransitions defines the allowed state machine transitions for
// work-hour records. Approved and rejected are terminal.
var workHourTransitions = map[Status][]Status{
	StatusPending: {StatusApproved, StatusRejected},
}

// activityTransitions adds the cancelled terminal state, reachable from
// pending and from approved.
var activityTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCancelled},
}

func (s Status) canTransition(next Status, table map[Status][]Status) bool {
	for _, allowed := range table[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanTransitionWorkHour reports whether a work-hour record may move from
// status s to next.
func (s Status) CanTransitionWorkHour(next Status) bool {
	return s.canTransition(next, workHourTransitions)
}

// CanTransitionActivity reports whether an activity record may move from
// status s to next.
func (s Status) CanTransitionActivity(next Status) bool {
	return s.canTransition(next, activityTransitions)
}

// IsDecision reports whether the status is one an approver may set on a
// pending record.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// WorkHour is a work-hour claim submitted by a student. Everything except
// the status fields is immutable after creation.
//
// Hours is kept as the decimal string the submitter sent; it is parsed at
// aggregation time and unparsable values count as zero.
type WorkHour struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	SubmitterID    string    `json:"submitter_id" bson:"submitter_id"`
	ClubID         string    `json:"club_id" bson:"club_id"`
	ActivityName   string    `json:"activity_name" bson:"activity_name"`
	ActivityType   string    `json:"activity_type,omitempty" bson:"activity_type,omitempty"`
	Hours          string    `json:"hours" bson:"hours"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	ActivityDate   string    `json:"activity_date,omitempty" bson:"activity_date,omitempty"`
	Status         Status    `json:"status" bson:"status"`
	SubmitTime     time.Time `json:"submit_time" bson:"submit_time"`
	ApproveTime    time.Time `json:"approve_time,omitempty" bson:"approve_time,omitempty"`
	ApproverID     string    `json:"approver_id,omitempty" bson:"approver_id,omitempty"`
	RejectReason   string    `json:"reject_reason,omitempty" bson:"reject_reason,omitempty"`
	IdempotencyKey string    `json:"-" bson:"idempotency_key,omitempty"`
}

// Activity is an activity proposal submitted by a club organizer. Same
// lifecycle shape as WorkHour plus the cancelled terminal state.
type Activity struct {
	ID                  string    `json:"id" bson:"_id,omitempty"`
	Name                string    `json:"name" bson:"name"`
	ClubID              string    `json:"club_id" bson:"club_id"`
	OrganizerID         string    `json:"organizer_id" bson:"organizer_id"`
	Description         string    `json:"description,omitempty" bson:"description,omitempty"`
	StartTime           time.Time `json:"start_time,omitempty" bson:"start_time,omitempty"`
	EndTime             time.Time `json:"end_time,omitempty" bson:"end_time,omitempty"`
	Location            string    `json:"location,omitempty" bson:"location,omitempty"`
	MaxParticipants     int       `json:"max_participants,omitempty" bson:"max_participants,omitempty"`
	CurrentParticipants int       `json:"current_participants" bson:"current_participants"`
	ActivityType        string    `json:"activity_type,omitempty" bson:"activity_type,omitempty"`
	Status              Status    `json:"status" bson:"status"`
	SubmitTime          time.Time `json:"submit_time" bson:"submit_time"`
	ApproveTime         time.Time `json:"approve_time,omitempty" bson:"approve_time,omitempty"`
	ApproverID          string    `json:"approver_id,omitempty" bson:"approver_id,omitempty"`
	RejectReason        string    `json:"reject_reason,omitempty" bson:"reject_reason,omitempty"`
	IdempotencyKey      string    `json:"-" bson:"idempotency_key,omitempty"`
}
