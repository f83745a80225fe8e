package onboarding

import (
	"context"
	"errors"

	onboardingerrors "staffhub/internal/onboarding/errors"
	"staffhub/internal/staff"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	// EnsureRecord creates an empty onboarding record for the staff
	// member if none exists; safe to call repeatedly.
	EnsureRecord(ctx context.Context, companyID, staffID string) error

	// GetProgress is the staff-facing view: completion counts sections
	// the staff member has handed in.
	GetProgress(ctx context.Context, companyID, staffID string) (OnboardingResponse, error)
	SubmitSection(ctx context.Context, companyID, staffID, section string) (OnboardingResponse, error)

	// GetAdminView and ListByCompany count sections an administrator has
	// verified instead.
	GetAdminView(ctx context.Context, companyID, staffID string) (OnboardingResponse, error)
	ListByCompany(ctx context.Context, companyID string) ([]OnboardingResponse, error)
	VerifySection(ctx context.Context, companyID, staffID, section string, req VerifySectionRequest) (OnboardingResponse, error)
	MarkComplete(ctx context.Context, companyID, staffID string) (OnboardingResponse, error)
}

type service struct {
	repo      Repository
	staffRepo staff.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, staffRepo staff.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("onboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.service")
	}
	return &service{repo: repo, staffRepo: staffRepo, logger: l}
}

func (s *service) EnsureRecord(ctx context.Context, companyID, staffID string) error {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return onboardingerrors.ErrInvalidStaffID
	}
	staffUUID, err := uuid.Parse(staffID)
	if err != nil {
		return onboardingerrors.ErrInvalidStaffID
	}

	rec := &OnboardingRecord{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		StaffID:   staffUUID,
	}
	if err := s.repo.EnsureRecord(ctx, rec); err != nil {
		return err
	}

	s.logger.Debug("onboarding record ensured",
		zap.String("staff_id", staffID),
		zap.String("company_id", companyID),
	)
	return nil
}

func (s *service) GetProgress(ctx context.Context, companyID, staffID string) (OnboardingResponse, error) {
	rec, err := s.loadOrCreate(ctx, companyID, staffID)
	if err != nil {
		return OnboardingResponse{}, err
	}
	return mapResponse(rec, SubmissionCompletionPercent(rec.Sections())), nil
}

func (s *service) SubmitSection(ctx context.Context, companyID, staffID, sectionName string) (OnboardingResponse, error) {
	rec, err := s.loadOrCreate(ctx, companyID, staffID)
	if err != nil {
		return OnboardingResponse{}, err
	}

	section := rec.section(sectionName)
	if section == nil {
		return OnboardingResponse{}, onboardingerrors.ErrUnknownSection
	}

	// Resubmission after rejection clears the reviewer's feedback.
	section.Status = SectionStatusSubmitted
	section.Feedback = ""
	rec.CompletionPercent = SubmissionCompletionPercent(rec.Sections())

	if err := s.repo.Update(ctx, rec); err != nil {
		return OnboardingResponse{}, err
	}

	s.logger.Info("onboarding section submitted",
		zap.String("staff_id", staffID),
		zap.String("section", sectionName),
	)
	return mapResponse(rec, rec.CompletionPercent), nil
}

func (s *service) GetAdminView(ctx context.Context, companyID, staffID string) (OnboardingResponse, error) {
	rec, err := s.loadOrCreate(ctx, companyID, staffID)
	if err != nil {
		return OnboardingResponse{}, err
	}
	return mapResponse(rec, ApprovalCompletionPercent(rec.Sections())), nil
}

func (s *service) ListByCompany(ctx context.Context, companyID string) ([]OnboardingResponse, error) {
	rows, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]OnboardingResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, mapResponse(&rows[i], ApprovalCompletionPercent(rows[i].Sections())))
	}
	return resp, nil
}

func (s *service) VerifySection(ctx context.Context, companyID, staffID, sectionName string, req VerifySectionRequest) (OnboardingResponse, error) {
	if req.Verdict != SectionStatusApproved && req.Verdict != SectionStatusRejected {
		return OnboardingResponse{}, onboardingerrors.ErrInvalidVerdict
	}

	rec, err := s.loadOrCreate(ctx, companyID, staffID)
	if err != nil {
		return OnboardingResponse{}, err
	}

	section := rec.section(sectionName)
	if section == nil {
		return OnboardingResponse{}, onboardingerrors.ErrUnknownSection
	}
	if section.Status != SectionStatusSubmitted {
		return OnboardingResponse{}, onboardingerrors.ErrSectionNotSubmitted
	}

	section.Status = req.Verdict
	section.Feedback = req.Feedback
	rec.CompletionPercent = ApprovalCompletionPercent(rec.Sections())

	if err := s.repo.Update(ctx, rec); err != nil {
		return OnboardingResponse{}, err
	}

	s.logger.Info("onboarding section verified",
		zap.String("staff_id", staffID),
		zap.String("section", sectionName),
		zap.String("verdict", req.Verdict),
	)
	return mapResponse(rec, rec.CompletionPercent), nil
}

func (s *service) MarkComplete(ctx context.Context, companyID, staffID string) (OnboardingResponse, error) {
	rec, err := s.loadOrCreate(ctx, companyID, staffID)
	if err != nil {
		return OnboardingResponse{}, err
	}

	if rec.IsComplete {
		return mapResponse(rec, ApprovalCompletionPercent(rec.Sections())), nil
	}
	if !AllApproved(rec.Sections()) {
		return OnboardingResponse{}, onboardingerrors.ErrSectionsNotApproved
	}

	rec.IsComplete = true
	if err := s.repo.Update(ctx, rec); err != nil {
		return OnboardingResponse{}, err
	}

	s.logger.Info("onboarding marked complete", zap.String("staff_id", staffID))
	return mapResponse(rec, ApprovalCompletionPercent(rec.Sections())), nil
}

// loadOrCreate validates the staff member against the tenant, then loads
// the onboarding record, creating an empty one on first interaction.
func (s *service) loadOrCreate(ctx context.Context, companyID, staffID string) (*OnboardingRecord, error) {
	if _, err := s.staffRepo.FindByIDAndCompany(ctx, companyID, staffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, onboardingerrors.ErrInvalidStaffID
		}
		return nil, err
	}

	rec, err := s.repo.FindByStaff(ctx, staffID)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.EnsureRecord(ctx, companyID, staffID); err != nil {
		return nil, err
	}
	return s.repo.FindByStaff(ctx, staffID)
}

func mapResponse(rec *OnboardingRecord, percent int) OnboardingResponse {
	sections := rec.Sections()
	views := make([]SectionView, 0, len(SectionNames))
	for _, name := range SectionNames {
		views = append(views, SectionView{
			Name:     name,
			Status:   sections[name].Status,
			Feedback: sections[name].Feedback,
		})
	}
	return OnboardingResponse{
		ID:                rec.ID.String(),
		StaffID:           rec.StaffID.String(),
		CompanyID:         rec.CompanyID.String(),
		Sections:          views,
		CompletionPercent: percent,
		IsComplete:        rec.IsComplete,
	}
}
