package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sectionsWith(statuses map[string]string) map[string]Section {
	sections := make(map[string]Section, len(SectionNames))
	for _, name := range SectionNames {
		sections[name] = Section{Status: statuses[name]}
	}
	return sections
}

func uniformSections(status string) map[string]Section {
	statuses := make(map[string]string, len(SectionNames))
	for _, name := range SectionNames {
		statuses[name] = status
	}
	return sectionsWith(statuses)
}

func TestApprovalCompletionPercent(t *testing.T) {
	assert.Equal(t, 0, ApprovalCompletionPercent(uniformSections(SectionStatusNotSubmitted)))
	assert.Equal(t, 0, ApprovalCompletionPercent(uniformSections(SectionStatusSubmitted)))
	assert.Equal(t, 100, ApprovalCompletionPercent(uniformSections(SectionStatusApproved)))
	assert.Equal(t, 100, ApprovalCompletionPercent(uniformSections(SectionStatusRejected)))

	// Four approved plus two rejected: round(100 * 6/9) = 67.
	sections := sectionsWith(map[string]string{
		SectionPersonalInfo:     SectionStatusApproved,
		SectionGovernmentID:     SectionStatusApproved,
		SectionDocuments:        SectionStatusApproved,
		SectionSignature:        SectionStatusApproved,
		SectionEmergencyContact: SectionStatusRejected,
		SectionResume:           SectionStatusRejected,
		SectionEducation:        SectionStatusSubmitted,
		SectionMedical:          SectionStatusSubmitted,
	})
	assert.Equal(t, 67, ApprovalCompletionPercent(sections))
}

func TestSubmissionCompletionPercent(t *testing.T) {
	assert.Equal(t, 0, SubmissionCompletionPercent(uniformSections(SectionStatusNotSubmitted)))
	assert.Equal(t, 100, SubmissionCompletionPercent(uniformSections(SectionStatusSubmitted)))
	assert.Equal(t, 100, SubmissionCompletionPercent(uniformSections(SectionStatusApproved)))
	// Rejected sections need resubmission, so they do not count.
	assert.Equal(t, 0, SubmissionCompletionPercent(uniformSections(SectionStatusRejected)))

	// One submitted out of nine: round(100 * 1/9) = 11.
	sections := sectionsWith(map[string]string{
		SectionPersonalInfo: SectionStatusSubmitted,
	})
	assert.Equal(t, 11, SubmissionCompletionPercent(sections))
}

func TestTwoFormulasDisagreeOnSameRecord(t *testing.T) {
	// Every section handed in, none verified yet: the staff member sees
	// full progress while the admin view shows none.
	sections := uniformSections(SectionStatusSubmitted)

	assert.Equal(t, 100, SubmissionCompletionPercent(sections))
	assert.Equal(t, 0, ApprovalCompletionPercent(sections))
}

func TestAllApproved(t *testing.T) {
	assert.True(t, AllApproved(uniformSections(SectionStatusApproved)))
	assert.False(t, AllApproved(uniformSections(SectionStatusSubmitted)))

	almost := uniformSections(SectionStatusApproved)
	almost[SectionDataPrivacy] = Section{Status: SectionStatusRejected}
	assert.False(t, AllApproved(almost))
}
