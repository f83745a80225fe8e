package ticket

import (
	"context"
	"database/sql"

	"staffhub/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Ticket) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Ticket, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]Ticket, error)
	FindAllByStaff(ctx context.Context, staffID string) ([]Ticket, error)
	Update(ctx context.Context, t *Ticket) error
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

func (r *repository) Create(ctx context.Context, t *Ticket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Ticket, error) {
	var t Ticket
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Ticket, error) {
	var rows []Ticket
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByStaff(ctx context.Context, staffID string) ([]Ticket, error) {
	var rows []Ticket
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, t *Ticket) error {
	return r.db.WithContext(ctx).Save(t).Error
}
