package timetracking

import (
	"context"
	"database/sql"
	"time"

	"staffhub/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *TimeEntry) error
	FindByStaffAndDate(ctx context.Context, companyID, staffID string, date time.Time) (*TimeEntry, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]TimeEntry, error)
	FindAllByStaff(ctx context.Context, companyID, staffID string) ([]TimeEntry, error)
	Update(ctx context.Context, e *TimeEntry) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByStaffAndDate(ctx context.Context, companyID, staffID string, date time.Time) (*TimeEntry, error) {
	var e TimeEntry
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND staff_id = ? AND work_date = ?", companyID, staffID, date).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]TimeEntry, error) {
	var rows []TimeEntry
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("work_date DESC, clock_in DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByStaff(ctx context.Context, companyID, staffID string) ([]TimeEntry, error) {
	var rows []TimeEntry
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND staff_id = ?", companyID, staffID).
		Order("work_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}
