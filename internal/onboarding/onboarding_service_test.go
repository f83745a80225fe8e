package onboarding

import (
	"context"
	"database/sql"
	"testing"

	onboardingerrors "staffhub/internal/onboarding/errors"
	"staffhub/internal/staff"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	records map[string]*OnboardingRecord
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*OnboardingRecord)}
}

func (f *fakeRepo) EnsureRecord(ctx context.Context, rec *OnboardingRecord) error {
	key := rec.StaffID.String()
	if _, ok := f.records[key]; !ok {
		stored := *rec
		f.records[key] = &stored
	}
	return nil
}

func (f *fakeRepo) FindByStaff(ctx context.Context, staffID string) (*OnboardingRecord, error) {
	rec, ok := f.records[staffID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	snapshot := *rec
	return &snapshot, nil
}

func (f *fakeRepo) FindAllByCompany(ctx context.Context, companyID string) ([]OnboardingRecord, error) {
	var rows []OnboardingRecord
	for _, rec := range f.records {
		if rec.CompanyID.String() == companyID {
			rows = append(rows, *rec)
		}
	}
	return rows, nil
}

func (f *fakeRepo) Update(ctx context.Context, rec *OnboardingRecord) error {
	stored := *rec
	f.records[rec.StaffID.String()] = &stored
	return nil
}

type fakeStaffRepo struct {
	member *staff.Staff
}

func (f *fakeStaffRepo) WithTx(tx *sql.Tx) staff.Repository               { return f }
func (f *fakeStaffRepo) Create(ctx context.Context, s *staff.Staff) error { return nil }
func (f *fakeStaffRepo) FindByID(ctx context.Context, id string) (*staff.Staff, error) {
	return f.member, nil
}
func (f *fakeStaffRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*staff.Staff, error) {
	if f.member == nil || f.member.ID.String() != id || f.member.CompanyID.String() != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return f.member, nil
}
func (f *fakeStaffRepo) FindAllByCompany(ctx context.Context, companyID string) ([]staff.Staff, error) {
	return nil, nil
}
func (f *fakeStaffRepo) FindAllForScheduling(ctx context.Context, companyID string) ([]staff.Staff, error) {
	return nil, nil
}
func (f *fakeStaffRepo) Update(ctx context.Context, s *staff.Staff) error       { return nil }
func (f *fakeStaffRepo) Delete(ctx context.Context, companyID, id string) error { return nil }

func newTestService() (Service, *fakeRepo, string, string) {
	member := &staff.Staff{ID: uuid.New(), CompanyID: uuid.New()}
	repo := newFakeRepo()
	svc := NewService(repo, &fakeStaffRepo{member: member})
	return svc, repo, member.CompanyID.String(), member.ID.String()
}

func TestGetProgress_CreatesRecordOnFirstInteraction(t *testing.T) {
	svc, repo, companyID, staffID := newTestService()

	resp, err := svc.GetProgress(context.Background(), companyID, staffID)
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.CompletionPercent)
	assert.False(t, resp.IsComplete)
	assert.Len(t, resp.Sections, 9)
	assert.Contains(t, repo.records, staffID)
}

func TestSubmitSection_UpdatesSubmissionPercent(t *testing.T) {
	svc, _, companyID, staffID := newTestService()

	resp, err := svc.SubmitSection(context.Background(), companyID, staffID, SectionPersonalInfo)
	assert.NoError(t, err)
	assert.Equal(t, 11, resp.CompletionPercent)

	_, err = svc.SubmitSection(context.Background(), companyID, staffID, "passport")
	assert.ErrorIs(t, err, onboardingerrors.ErrUnknownSection)
}

func TestVerifySection_RequiresSubmission(t *testing.T) {
	svc, _, companyID, staffID := newTestService()

	_, err := svc.VerifySection(context.Background(), companyID, staffID, SectionResume, VerifySectionRequest{Verdict: SectionStatusApproved})
	assert.ErrorIs(t, err, onboardingerrors.ErrSectionNotSubmitted)

	_, err = svc.VerifySection(context.Background(), companyID, staffID, SectionResume, VerifySectionRequest{Verdict: "MAYBE"})
	assert.ErrorIs(t, err, onboardingerrors.ErrInvalidVerdict)
}

func TestVerifySection_NeverTouchesIsComplete(t *testing.T) {
	svc, repo, companyID, staffID := newTestService()

	for _, name := range SectionNames {
		_, err := svc.SubmitSection(context.Background(), companyID, staffID, name)
		assert.NoError(t, err)
	}
	for _, name := range SectionNames {
		resp, err := svc.VerifySection(context.Background(), companyID, staffID, name, VerifySectionRequest{Verdict: SectionStatusApproved})
		assert.NoError(t, err)
		assert.False(t, resp.IsComplete, "verification must never flip the completion latch")
	}

	rec := repo.records[staffID]
	assert.False(t, rec.IsComplete)
	assert.Equal(t, 100, rec.CompletionPercent)
}

func TestVerifySection_RejectionStoresFeedback(t *testing.T) {
	svc, repo, companyID, staffID := newTestService()

	_, err := svc.SubmitSection(context.Background(), companyID, staffID, SectionMedical)
	assert.NoError(t, err)

	resp, err := svc.VerifySection(context.Background(), companyID, staffID, SectionMedical, VerifySectionRequest{
		Verdict:  SectionStatusRejected,
		Feedback: "certificate expired",
	})
	assert.NoError(t, err)
	assert.Equal(t, 11, resp.CompletionPercent)
	assert.Equal(t, "certificate expired", repo.records[staffID].Medical.Feedback)

	// Resubmitting clears the verdict and feedback.
	_, err = svc.SubmitSection(context.Background(), companyID, staffID, SectionMedical)
	assert.NoError(t, err)
	assert.Equal(t, SectionStatusSubmitted, repo.records[staffID].Medical.Status)
	assert.Empty(t, repo.records[staffID].Medical.Feedback)
}

func TestMarkComplete_RequiresAllApproved(t *testing.T) {
	svc, repo, companyID, staffID := newTestService()

	_, err := svc.SubmitSection(context.Background(), companyID, staffID, SectionPersonalInfo)
	assert.NoError(t, err)

	_, err = svc.MarkComplete(context.Background(), companyID, staffID)
	assert.ErrorIs(t, err, onboardingerrors.ErrSectionsNotApproved)

	for _, name := range SectionNames {
		_, err := svc.SubmitSection(context.Background(), companyID, staffID, name)
		assert.NoError(t, err)
		_, err = svc.VerifySection(context.Background(), companyID, staffID, name, VerifySectionRequest{Verdict: SectionStatusApproved})
		assert.NoError(t, err)
	}

	resp, err := svc.MarkComplete(context.Background(), companyID, staffID)
	assert.NoError(t, err)
	assert.True(t, resp.IsComplete)

	// The latch is one-way and marking again is a no-op.
	resp, err = svc.MarkComplete(context.Background(), companyID, staffID)
	assert.NoError(t, err)
	assert.True(t, resp.IsComplete)
	assert.True(t, repo.records[staffID].IsComplete)
}

func TestEnsureRecord_IsIdempotent(t *testing.T) {
	svc, repo, companyID, staffID := newTestService()

	assert.NoError(t, svc.EnsureRecord(context.Background(), companyID, staffID))
	first := repo.records[staffID].ID
	assert.NoError(t, svc.EnsureRecord(context.Background(), companyID, staffID))
	assert.Equal(t, first, repo.records[staffID].ID)
}
