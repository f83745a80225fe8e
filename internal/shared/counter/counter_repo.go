package counter

import (
	"context"

	"gorm.io/gorm"
)

// Repository hands out per-tenant monotonic sequence values, one sequence
// per (company, counter type) pair. Staff numbers and ticket numbers each
// draw from their own counter type.
type Repository interface {
	GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error)
}

type pgRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &pgRepository{db: db}
}

const nextValueQuery = `
	INSERT INTO company_counters (company_id, counter_type, last_value, updated_at)
	VALUES (?, ?, 1, now())
	ON CONFLICT (company_id, counter_type) DO UPDATE
	SET last_value = company_counters.last_value + 1, updated_at = now()
	RETURNING last_value`

// GetNextValue allocates the next value with a single atomic UPSERT, so
// concurrent callers on the same counter never observe the same value.
func (r *pgRepository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	var nextValue int64
	if err := r.db.WithContext(ctx).Raw(nextValueQuery, companyID, counterType).Scan(&nextValue).Error; err != nil {
		return 0, err
	}
	return nextValue, nil
}
