package handler

import "time"

type submitActivityRequest struct {
	Name            string    `json:"name" validate:"required"`
	ClubID          string    `json:"club_id"`
	Description     string    `json:"description"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Location        string    `json:"location"`
	MaxParticipants int       `json:"max_participants" validate:"min=0"`
	ActivityType    string    `json:"activity_type"`
}

// activityResponse is the transport view of an activity record.
type activityResponse struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	ClubID              string     `json:"club_id"`
	OrganizerID         string     `json:"organizer_id"`
	Description         string     `json:"description,omitempty"`
	StartTime           *time.Time `json:"start_time,omitempty"`
	EndTime             *time.Time `json:"end_time,omitempty"`
	Location            string     `json:"location,omitempty"`
	MaxParticipants     int        `json:"max_participants,omitempty"`
	CurrentParticipants int        `json:"current_participants"`
	ActivityType        string     `json:"activity_type,omitempty"`
	Status              string     `json:"status"`
	SubmitTime          time.Time  `json:"submit_time"`
	ApproveTime         *time.Time `json:"approve_time,omitempty"`
	ApproverID          string     `json:"approver_id,omitempty"`
	RejectReason        string     `json:"reject_reason,omitempty"`
}

type activityListResponse struct {
	Data []activityResponse `json:"data"`
}
