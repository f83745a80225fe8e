package onboarding

import (
	"context"

	"staffhub/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// EnsureRecord inserts an empty record for the staff member if none
	// exists yet; a concurrent insert is absorbed by the unique index.
	EnsureRecord(ctx context.Context, rec *OnboardingRecord) error
	FindByStaff(ctx context.Context, staffID string) (*OnboardingRecord, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]OnboardingRecord, error)
	Update(ctx context.Context, rec *OnboardingRecord) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) EnsureRecord(ctx context.Context, rec *OnboardingRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "staff_id"}},
			DoNothing: true,
		}).
		Create(rec).Error
}

func (r *repository) FindByStaff(ctx context.Context, staffID string) (*OnboardingRecord, error) {
	var rec OnboardingRecord
	err := r.db.WithContext(ctx).First(&rec, "staff_id = ?", staffID).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]OnboardingRecord, error) {
	var rows []OnboardingRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, rec *OnboardingRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}
