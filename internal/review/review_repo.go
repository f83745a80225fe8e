package review

import (
	"context"
	"database/sql"

	"staffhub/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *ReviewRecord) error
	FindByID(ctx context.Context, id string) (*ReviewRecord, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*ReviewRecord, error)
	FindAllByStaff(ctx context.Context, staffID string) ([]ReviewRecord, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]ReviewRecord, error)
	Update(ctx context.Context, r *ReviewRecord) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository whose statements run on the given
// transaction; *sql.Tx satisfies gorm's ConnPool.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, rec *ReviewRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*ReviewRecord, error) {
	var rec ReviewRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*ReviewRecord, error) {
	var rec ReviewRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindAllByStaff(ctx context.Context, staffID string) ([]ReviewRecord, error) {
	var rows []ReviewRecord
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("due_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]ReviewRecord, error) {
	var rows []ReviewRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("due_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, rec *ReviewRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}
