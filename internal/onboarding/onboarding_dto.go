package onboarding

type VerifySectionRequest struct {
	Verdict  string `json:"verdict" binding:"required"`
	Feedback string `json:"feedback"`
}

type SectionView struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Feedback string `json:"feedback,omitempty"`
}

type OnboardingResponse struct {
	ID                string        `json:"id"`
	StaffID           string        `json:"staff_id"`
	CompanyID         string        `json:"company_id"`
	Sections          []SectionView `json:"sections"`
	CompletionPercent int           `json:"completion_percent"`
	IsComplete        bool          `json:"is_complete"`
}
