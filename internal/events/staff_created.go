package events

import "time"

const StaffCreatedTopic = "staffing.staff.lifecycle.v1"

type StaffCreatedEvent struct {
	EventType  string    `json:"event_type"`
	StaffID    string    `json:"staff_id"`
	CompanyID  string    `json:"company_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
