package ticket

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
	StatusClosed     = "CLOSED"
)

const (
	CategoryIT         = "IT"
	CategoryHR         = "HR"
	CategoryFinance    = "FINANCE"
	CategoryOperations = "OPERATIONS"
	CategoryFacilities = "FACILITIES"
)

type Ticket struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID    uuid.UUID      `gorm:"column:company_id;type:uuid;not null;index"`
	StaffID      uuid.UUID      `gorm:"column:staff_id;type:uuid;not null;index"`
	TicketNumber string         `gorm:"column:ticket_number;type:varchar(30);not null;uniqueIndex:uq_ticket_number"`
	Category     string         `gorm:"column:category;type:varchar(30);not null"`
	Subject      string         `gorm:"column:subject;type:varchar(255);not null"`
	Description  string         `gorm:"column:description;type:text;not null"`
	Status       string         `gorm:"column:status;type:varchar(20);not null;default:PENDING"`
	DepartmentID uuid.UUID      `gorm:"column:department_id;type:uuid;not null"`
	ResolvedAt   *time.Time     `gorm:"column:resolved_at"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Ticket) TableName() string {
	return "tickets"
}
