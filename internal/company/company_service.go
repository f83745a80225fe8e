package company

import (
	"context"
	"errors"

	companyerrors "staffhub/internal/company/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)

	CreateContact(ctx context.Context, companyID string, req CreateClientContactRequest) (ClientContactResponse, error)
	GetContacts(ctx context.Context, companyID string) ([]ClientContactResponse, error)
	UpdateContact(ctx context.Context, companyID, id string, req UpdateClientContactRequest) (ClientContactResponse, error)
	GetPrimaryContact(ctx context.Context, companyID string) (ClientContactResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}
	return mapCompanyResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}

	if req.Name != "" {
		c.Name = req.Name
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("update company persist failed", zap.String("company_id", id), zap.Error(err))
		return CompanyResponse{}, err
	}

	return mapCompanyResponse(*c), nil
}

func (s *service) CreateContact(ctx context.Context, companyID string, req CreateClientContactRequest) (ClientContactResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ClientContactResponse{}, companyerrors.ErrInvalidCompanyID
	}

	contact := &ClientContact{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		IsActive:  true,
	}

	if err := s.repo.CreateContact(ctx, contact); err != nil {
		s.logger.Error("create client contact persist failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return ClientContactResponse{}, companyerrors.ErrContactEmailExists
	}

	s.logger.Info("client contact created",
		zap.String("contact_id", contact.ID.String()),
		zap.String("company_id", companyID),
	)
	return mapContactResponse(*contact, false), nil
}

func (s *service) GetContacts(ctx context.Context, companyID string) ([]ClientContactResponse, error) {
	contacts, err := s.repo.FindContactsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]ClientContactResponse, len(contacts))
	primarySeen := false
	for i, contact := range contacts {
		// Contacts are ordered by created_at so the first active one is primary
		isPrimary := contact.IsActive && !primarySeen
		if isPrimary {
			primarySeen = true
		}
		resp[i] = mapContactResponse(contact, isPrimary)
	}
	return resp, nil
}

func (s *service) UpdateContact(ctx context.Context, companyID, id string, req UpdateClientContactRequest) (ClientContactResponse, error) {
	contact, err := s.repo.FindContactByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ClientContactResponse{}, companyerrors.ErrContactNotFound
		}
		return ClientContactResponse{}, err
	}

	if req.FullName != "" {
		contact.FullName = req.FullName
	}
	if req.Phone != nil {
		contact.Phone = req.Phone
	}
	if req.IsActive != nil {
		contact.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateContact(ctx, contact); err != nil {
		return ClientContactResponse{}, err
	}

	return mapContactResponse(*contact, false), nil
}

func (s *service) GetPrimaryContact(ctx context.Context, companyID string) (ClientContactResponse, error) {
	contact, err := s.repo.FindPrimaryContact(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ClientContactResponse{}, companyerrors.ErrNoPrimaryContact
		}
		return ClientContactResponse{}, err
	}
	return mapContactResponse(*contact, true), nil
}

func mapCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:       c.ID.String(),
		Name:     c.Name,
		Email:    c.Email,
		IsActive: c.IsActive,
	}
}

func mapContactResponse(contact ClientContact, isPrimary bool) ClientContactResponse {
	return ClientContactResponse{
		ID:        contact.ID.String(),
		CompanyID: contact.CompanyID.String(),
		FullName:  contact.FullName,
		Email:     contact.Email,
		Phone:     contact.Phone,
		IsActive:  contact.IsActive,
		IsPrimary: isPrimary,
	}
}
