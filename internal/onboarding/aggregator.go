package onboarding

import "math"

// The two completion formulas answer different questions: the approval
// percent tracks how many sections an administrator has acted on, the
// submission percent tracks how many the staff member has handed in.
// Callers must be explicit about which one they need.

func percentOf(sections map[string]Section, match func(status string) bool) int {
	count := 0
	for _, name := range SectionNames {
		if match(sections[name].Status) {
			count++
		}
	}
	return int(math.Round(100 * float64(count) / float64(len(SectionNames))))
}

// ApprovalCompletionPercent counts sections an administrator has verified
// (APPROVED or REJECTED).
func ApprovalCompletionPercent(sections map[string]Section) int {
	return percentOf(sections, func(status string) bool {
		return status == SectionStatusApproved || status == SectionStatusRejected
	})
}

// SubmissionCompletionPercent counts sections the staff member has handed
// in (SUBMITTED or APPROVED). A rejected section needs to be resubmitted,
// so it does not count.
func SubmissionCompletionPercent(sections map[string]Section) int {
	return percentOf(sections, func(status string) bool {
		return status == SectionStatusSubmitted || status == SectionStatusApproved
	})
}

// AllApproved reports whether every section has been approved; the
// precondition for the admin "complete onboarding" latch.
func AllApproved(sections map[string]Section) bool {
	for _, name := range SectionNames {
		if sections[name].Status != SectionStatusApproved {
			return false
		}
	}
	return true
}
