package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type submitWorkHourRequest struct {
	ClubID       string `json:"club_id"`
	ActivityName string `json:"activity_name" validate:"required"`
	ActivityType string `json:"activity_type"`
	Hours        string `json:"hours"         validate:"required,numeric"`
	Description  string `json:"description"`
	ActivityDate string `json:"activity_date"`
}

type decideRequest struct {
	Status       string `json:"status" validate:"required,oneof=approved rejected"`
	RejectReason string `json:"reject_reason"`
}

// workHourResponse is the transport view of a work-hour record. Approval
// fields are omitted while the record is still pending.
type workHourResponse struct {
	ID           string     `json:"id"`
	SubmitterID  string     `json:"submitter_id"`
	ClubID       string     `json:"club_id"`
	ActivityName string     `json:"activity_name"`
	ActivityType string     `json:"activity_type,omitempty"`
	Hours        string     `json:"hours"`
	Description  string     `json:"description,omitempty"`
	ActivityDate string     `json:"activity_date,omitempty"`
	Status       string     `json:"status"`
	SubmitTime   time.Time  `json:"submit_time"`
	ApproveTime  *time.Time `json:"approve_time,omitempty"`
	ApproverID   string     `json:"approver_id,omitempty"`
	RejectReason string     `json:"reject_reason,omitempty"`
}

type workHourListResponse struct {
	Data []workHourResponse `json:"data"`
}
