package company

import (
	"context"

	"staffhub/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*Company, error)
	Update(ctx context.Context, c *Company) error

	CreateContact(ctx context.Context, contact *ClientContact) error
	FindContactByID(ctx context.Context, companyID, id string) (*ClientContact, error)
	FindContactsByCompany(ctx context.Context, companyID string) ([]ClientContact, error)
	UpdateContact(ctx context.Context, contact *ClientContact) error

	// FindPrimaryContact returns the earliest-created active contact.
	FindPrimaryContact(ctx context.Context, companyID string) (*ClientContact, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) CreateContact(ctx context.Context, contact *ClientContact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *repository) FindContactByID(ctx context.Context, companyID, id string) (*ClientContact, error) {
	var contact ClientContact
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *repository) FindContactsByCompany(ctx context.Context, companyID string) ([]ClientContact, error) {
	var contacts []ClientContact
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at ASC").
		Find(&contacts).Error
	return contacts, err
}

func (r *repository) UpdateContact(ctx context.Context, contact *ClientContact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

func (r *repository) FindPrimaryContact(ctx context.Context, companyID string) (*ClientContact, error) {
	var contact ClientContact
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("is_active = ?", true).
		Order("created_at ASC").
		First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}
