package staff

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Staff struct {
	ID               uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID        uuid.UUID      `gorm:"column:company_id;type:uuid;not null;index"`
	FullName         string         `gorm:"column:full_name;type:varchar(255);not null"`
	Email            string         `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_staff_email"`
	StaffNumber      string         `gorm:"column:staff_number;type:varchar(30);not null;uniqueIndex:uq_staff_number"`
	Phone            *string        `gorm:"column:phone;type:varchar(30)"`
	StartDate        *time.Time     `gorm:"column:start_date;type:date"`
	EmploymentStatus string         `gorm:"column:employment_status;type:varchar(20);not null;default:PROBATION"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Staff) TableName() string {
	return "staff"
}
