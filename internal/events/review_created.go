package events

import "time"

const ReviewCreatedTopic = "staffing.review.created.v1"

type ReviewCreatedEvent struct {
	EventType  string    `json:"event_type"`
	ReviewID   string    `json:"review_id"`
	StaffID    string    `json:"staff_id"`
	CompanyID  string    `json:"company_id"`
	ReviewType string    `json:"review_type"`
	DueDate    time.Time `json:"due_date"`
	OccurredAt time.Time `json:"occurred_at"`
}
