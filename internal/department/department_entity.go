package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_department_company_code"`
	Name      string    `gorm:"size:255;not null"`
	// Code is the stable routing key tickets are assigned by (IT, HR,
	// FINANCE, OPERATIONS, ...).
	Code      string         `gorm:"size:30;not null;uniqueIndex:uq_department_company_code"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
