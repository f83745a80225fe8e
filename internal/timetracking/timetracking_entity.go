package timetracking

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeEntry struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID      `gorm:"column:company_id;type:uuid;not null;index"`
	StaffID   uuid.UUID      `gorm:"column:staff_id;type:uuid;not null;index"`
	WorkDate  time.Time      `gorm:"column:work_date;type:date;not null;index"`
	ClockIn   time.Time      `gorm:"column:clock_in;type:timestamptz;not null"`
	ClockOut  *time.Time     `gorm:"column:clock_out;type:timestamptz"`
	Status    string         `gorm:"column:status;type:varchar(20);not null;default:ON_TIME"`
	Source    string         `gorm:"column:source;type:varchar(30);not null;default:MANUAL"`
	Notes     *string        `gorm:"column:notes;type:text"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}
