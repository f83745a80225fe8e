package review

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeMonth1    = "MONTH_1"
	TypeMonth3    = "MONTH_3"
	TypeMonth5    = "MONTH_5"
	TypeRecurring = "RECURRING"
)

const (
	StatusPending     = "PENDING"
	StatusSubmitted   = "SUBMITTED"
	StatusUnderReview = "UNDER_REVIEW"
)

// MilestoneOrder is the fixed evaluation order used by both the resolver
// and the auto-creation pass.
var MilestoneOrder = []string{TypeMonth1, TypeMonth3, TypeMonth5, TypeRecurring}

type ReviewRecord struct {
	ID               uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID        uuid.UUID      `gorm:"column:company_id;type:uuid;not null;index"`
	StaffID          uuid.UUID      `gorm:"column:staff_id;type:uuid;not null;uniqueIndex:uq_review_staff_type_due"`
	Type             string         `gorm:"column:type;type:varchar(20);not null;uniqueIndex:uq_review_staff_type_due"`
	Status           string         `gorm:"column:status;type:varchar(20);not null;default:PENDING"`
	DueDate          time.Time      `gorm:"column:due_date;type:date;not null;uniqueIndex:uq_review_staff_type_due"`
	SubmittedDate    *time.Time     `gorm:"column:submitted_date"`
	EvaluationPeriod string         `gorm:"column:evaluation_period;type:varchar(100);not null"`
	ReviewerID       *uuid.UUID     `gorm:"column:reviewer_id;type:uuid"`
	ReviewerName     string         `gorm:"column:reviewer_name;type:varchar(255)"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (ReviewRecord) TableName() string {
	return "review_records"
}
