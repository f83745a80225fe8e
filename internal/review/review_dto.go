package review

import "time"

type ReviewResponse struct {
	ID               string     `json:"id"`
	StaffID          string     `json:"staff_id"`
	CompanyID        string     `json:"company_id"`
	Type             string     `json:"type"`
	Status           string     `json:"status"`
	DueDate          string     `json:"due_date"`
	SubmittedDate    *time.Time `json:"submitted_date,omitempty"`
	EvaluationPeriod string     `json:"evaluation_period"`
	ReviewerID       *string    `json:"reviewer_id,omitempty"`
	ReviewerName     string     `json:"reviewer_name,omitempty"`
}

// NextMilestoneResponse wraps the resolver result; Milestone is null when
// nothing is due for the staff member yet.
type NextMilestoneResponse struct {
	StaffID   string     `json:"staff_id"`
	Milestone *Milestone `json:"milestone"`
}

type ScheduleResponse struct {
	StaffID  string      `json:"staff_id"`
	Schedule []Milestone `json:"schedule"`
}

const (
	OutcomeCreated = "created"
	OutcomeSkipped = "skipped"
)

type AutoCreationDetail struct {
	StaffID    string `json:"staff_id"`
	Outcome    string `json:"outcome"`
	ReviewType string `json:"review_type,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

type AutoCreationResult struct {
	Created int                  `json:"created"`
	Skipped int                  `json:"skipped"`
	Details []AutoCreationDetail `json:"details"`
}
