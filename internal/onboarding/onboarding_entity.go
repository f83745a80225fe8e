package onboarding

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SectionStatusNotSubmitted = ""
	SectionStatusSubmitted    = "SUBMITTED"
	SectionStatusApproved     = "APPROVED"
	SectionStatusRejected     = "REJECTED"
)

const (
	SectionPersonalInfo     = "personal_info"
	SectionGovernmentID     = "government_id"
	SectionDocuments        = "documents"
	SectionSignature        = "signature"
	SectionEmergencyContact = "emergency_contact"
	SectionResume           = "resume"
	SectionEducation        = "education"
	SectionMedical          = "medical"
	SectionDataPrivacy      = "data_privacy"
)

// SectionNames is the fixed set of onboarding sections, in display order.
var SectionNames = []string{
	SectionPersonalInfo,
	SectionGovernmentID,
	SectionDocuments,
	SectionSignature,
	SectionEmergencyContact,
	SectionResume,
	SectionEducation,
	SectionMedical,
	SectionDataPrivacy,
}

type Section struct {
	Status   string `gorm:"column:status;type:varchar(20);not null;default:''"`
	Feedback string `gorm:"column:feedback;type:text;not null;default:''"`
}

type OnboardingRecord struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`
	StaffID   uuid.UUID `gorm:"column:staff_id;type:uuid;not null;uniqueIndex:uq_onboarding_staff"`

	PersonalInfo     Section `gorm:"embedded;embeddedPrefix:personal_info_"`
	GovernmentID     Section `gorm:"embedded;embeddedPrefix:government_id_"`
	Documents        Section `gorm:"embedded;embeddedPrefix:documents_"`
	Signature        Section `gorm:"embedded;embeddedPrefix:signature_"`
	EmergencyContact Section `gorm:"embedded;embeddedPrefix:emergency_contact_"`
	Resume           Section `gorm:"embedded;embeddedPrefix:resume_"`
	Education        Section `gorm:"embedded;embeddedPrefix:education_"`
	Medical          Section `gorm:"embedded;embeddedPrefix:medical_"`
	DataPrivacy      Section `gorm:"embedded;embeddedPrefix:data_privacy_"`

	CompletionPercent int  `gorm:"column:completion_percent;not null;default:0"`
	// IsComplete is a one-way latch flipped only by an explicit admin
	// action, never derived from section statuses.
	IsComplete bool `gorm:"column:is_complete;not null;default:false"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (OnboardingRecord) TableName() string {
	return "onboarding_records"
}

// section returns a pointer into the record for the named section, or nil
// for an unknown name.
func (r *OnboardingRecord) section(name string) *Section {
	switch name {
	case SectionPersonalInfo:
		return &r.PersonalInfo
	case SectionGovernmentID:
		return &r.GovernmentID
	case SectionDocuments:
		return &r.Documents
	case SectionSignature:
		return &r.Signature
	case SectionEmergencyContact:
		return &r.EmergencyContact
	case SectionResume:
		return &r.Resume
	case SectionEducation:
		return &r.Education
	case SectionMedical:
		return &r.Medical
	case SectionDataPrivacy:
		return &r.DataPrivacy
	}
	return nil
}

// Sections returns the record's section statuses keyed by section name.
func (r *OnboardingRecord) Sections() map[string]Section {
	sections := make(map[string]Section, len(SectionNames))
	for _, name := range SectionNames {
		sections[name] = *r.section(name)
	}
	return sections
}
