package onboarding_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staffhub/internal/onboarding"
	onboardingerrors "staffhub/internal/onboarding/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	getProgressFn   func(ctx context.Context, companyID, staffID string) (onboarding.OnboardingResponse, error)
	submitFn        func(ctx context.Context, companyID, staffID, section string) (onboarding.OnboardingResponse, error)
	verifyFn        func(ctx context.Context, companyID, staffID, section string, req onboarding.VerifySectionRequest) (onboarding.OnboardingResponse, error)
	markCompleteFn  func(ctx context.Context, companyID, staffID string) (onboarding.OnboardingResponse, error)
	getAdminViewFn  func(ctx context.Context, companyID, staffID string) (onboarding.OnboardingResponse, error)
	listByCompanyFn func(ctx context.Context, companyID string) ([]onboarding.OnboardingResponse, error)
}

func (f *fakeService) EnsureRecord(ctx context.Context, companyID, staffID string) error { return nil }
func (f *fakeService) GetProgress(ctx context.Context, companyID, staffID string) (onboarding.OnboardingResponse, error) {
	return f.getProgressFn(ctx, companyID, staffID)
}
func (f *fakeService) SubmitSection(ctx context.Context, companyID, staffID, section string) (onboarding.OnboardingResponse, error) {
	return f.submitFn(ctx, companyID, staffID, section)
}
func (f *fakeService) GetAdminView(ctx context.Context, companyID, staffID string) (onboarding.OnboardingResponse, error) {
	return f.getAdminViewFn(ctx, companyID, staffID)
}
func (f *fakeService) ListByCompany(ctx context.Context, companyID string) ([]onboarding.OnboardingResponse, error) {
	return f.listByCompanyFn(ctx, companyID)
}
func (f *fakeService) VerifySection(ctx context.Context, companyID, staffID, section string, req onboarding.VerifySectionRequest) (onboarding.OnboardingResponse, error) {
	return f.verifyFn(ctx, companyID, staffID, section, req)
}
func (f *fakeService) MarkComplete(ctx context.Context, companyID, staffID string) (onboarding.OnboardingResponse, error) {
	return f.markCompleteFn(ctx, companyID, staffID)
}

func TestHandler_GetMyProgress(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()
	staffID := uuid.New().String()

	svc := &fakeService{
		getProgressFn: func(ctx context.Context, cid, sid string) (onboarding.OnboardingResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, staffID, sid)
			return onboarding.OnboardingResponse{
				ID:                uuid.New().String(),
				StaffID:           sid,
				CompanyID:         cid,
				CompletionPercent: 22,
			}, nil
		},
	}
	h := onboarding.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", companyID)
	c.Set("staff_id", staffID)
	c.Request = httptest.NewRequest(http.MethodGet, "/onboarding/me", nil)

	h.GetMyProgress(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"completion_percent\":22")
}

func TestHandler_VerifySection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()
	staffID := uuid.New().String()

	t.Run("forwards verdict and feedback", func(t *testing.T) {
		svc := &fakeService{
			verifyFn: func(ctx context.Context, cid, sid, section string, req onboarding.VerifySectionRequest) (onboarding.OnboardingResponse, error) {
				assert.Equal(t, staffID, sid)
				assert.Equal(t, onboarding.SectionDocuments, section)
				assert.Equal(t, "REJECTED", req.Verdict)
				assert.Equal(t, "account number is missing digits", req.Feedback)
				return onboarding.OnboardingResponse{StaffID: sid, CompletionPercent: 11}, nil
			},
		}
		h := onboarding.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("company_id", companyID)
		c.Params = gin.Params{
			{Key: "staffId", Value: staffID},
			{Key: "section", Value: onboarding.SectionDocuments},
		}
		c.Request = httptest.NewRequest(http.MethodPost, "/onboarding/staff/x/sections/y/verify",
			strings.NewReader(`{"verdict":"REJECTED","feedback":"account number is missing digits"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.VerifySection(c)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing verdict fails validation", func(t *testing.T) {
		h := onboarding.NewHandler(&fakeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/onboarding/staff/x/sections/y/verify",
			strings.NewReader(`{"feedback":"no verdict"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.VerifySection(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("unverified section error maps to http status", func(t *testing.T) {
		svc := &fakeService{
			verifyFn: func(ctx context.Context, cid, sid, section string, req onboarding.VerifySectionRequest) (onboarding.OnboardingResponse, error) {
				return onboarding.OnboardingResponse{}, onboardingerrors.ErrSectionNotSubmitted
			},
		}
		h := onboarding.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("company_id", companyID)
		c.Params = gin.Params{
			{Key: "staffId", Value: staffID},
			{Key: "section", Value: onboarding.SectionSignature},
		}
		c.Request = httptest.NewRequest(http.MethodPost, "/onboarding/staff/x/sections/y/verify",
			strings.NewReader(`{"verdict":"APPROVED"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.VerifySection(c)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_MarkComplete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()
	staffID := uuid.New().String()

	svc := &fakeService{
		markCompleteFn: func(ctx context.Context, cid, sid string) (onboarding.OnboardingResponse, error) {
			return onboarding.OnboardingResponse{StaffID: sid, CompletionPercent: 100, IsComplete: true}, nil
		},
	}
	h := onboarding.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", companyID)
	c.Params = gin.Params{{Key: "staffId", Value: staffID}}
	c.Request = httptest.NewRequest(http.MethodPost, "/onboarding/staff/x/complete", nil)

	h.MarkComplete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"is_complete\":true")
}
