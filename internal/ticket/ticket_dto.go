package ticket

import "time"

type CreateTicketRequest struct {
	Category    string `json:"category" binding:"required"`
	Subject     string `json:"subject" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
}

type TicketResponse struct {
	ID           string     `json:"id"`
	TicketNumber string     `json:"ticket_number"`
	StaffID      string     `json:"staff_id"`
	Category     string     `json:"category"`
	Subject      string     `json:"subject"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	DepartmentID string     `json:"department_id"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
