package staff

import (
	"context"
	"database/sql"

	"staffhub/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Staff) error
	FindByID(ctx context.Context, id string) (*Staff, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Staff, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]Staff, error)
	// FindAllForScheduling returns non-terminated staff; companyID may be
	// empty to scan every tenant (worker invocation).
	FindAllForScheduling(ctx context.Context, companyID string) ([]Staff, error)
	Update(ctx context.Context, s *Staff) error
	Delete(ctx context.Context, companyID, id string) error
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

func (r *repository) Create(ctx context.Context, s *Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Staff, error) {
	var s Staff
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Staff, error) {
	var s Staff
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Staff, error) {
	var rows []Staff
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("full_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllForScheduling(ctx context.Context, companyID string) ([]Staff, error) {
	q := r.db.WithContext(ctx).
		Where("employment_status <> ?", StatusTerminated)
	if companyID != "" {
		q = q.Scopes(tenant.Scope(companyID))
	}

	var rows []Staff
	err := q.Order("created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, s *Staff) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Staff{}, "id = ?", id).Error
}
