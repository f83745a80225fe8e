package review

import (
	"fmt"
	"time"
)

const (
	StatusTagOverdue = "OVERDUE"
	StatusTagDueSoon = "DUE_SOON"
	StatusTagNotSent = "NOT_SENT"
)

const (
	month1Offset     = 30
	month3Offset     = 90
	month5Offset     = 150
	month3Floor      = 60
	month5Floor      = 120
	recurringFloor   = 150
	recurringCadence = 180
	dueSoonWindow    = 7
	creationLead     = 7
)

// Milestone is one resolved point on a staff member's review schedule.
type Milestone struct {
	Type         string    `json:"type"`
	DueDate      time.Time `json:"due_date"`
	DaysUntilDue int       `json:"days_until_due"`
	IsOverdue    bool      `json:"is_overdue"`
	Status       string    `json:"status"`
}

// truncateToDay normalizes a timestamp to midnight UTC so all schedule
// arithmetic runs at calendar-day granularity.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysEmployed returns whole days from startDate to now. Negative when
// the start date is still in the future; callers must guard.
func DaysEmployed(startDate, now time.Time) int {
	return int(truncateToDay(now).Sub(truncateToDay(startDate)).Hours() / 24)
}

// AddDays returns date shifted by n calendar days without mutating the input.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

func statusTag(daysUntilDue int) string {
	switch {
	case daysUntilDue < 0:
		return StatusTagOverdue
	case daysUntilDue <= dueSoonWindow:
		return StatusTagDueSoon
	default:
		return StatusTagNotSent
	}
}

func newMilestone(milestoneType string, dueDate, now time.Time) Milestone {
	daysUntilDue := DaysEmployed(now, dueDate)
	return Milestone{
		Type:         milestoneType,
		DueDate:      truncateToDay(dueDate),
		DaysUntilDue: daysUntilDue,
		IsOverdue:    daysUntilDue < 0,
		Status:       statusTag(daysUntilDue),
	}
}

func hasType(existing []ReviewRecord, milestoneType string) bool {
	for _, r := range existing {
		if r.Type == milestoneType {
			return true
		}
	}
	return false
}

// latestRecurring returns the RECURRING record with the latest due date,
// or nil when none exists.
func latestRecurring(existing []ReviewRecord) *ReviewRecord {
	var latest *ReviewRecord
	for i := range existing {
		r := &existing[i]
		if r.Type != TypeRecurring {
			continue
		}
		if latest == nil || r.DueDate.After(latest.DueDate) {
			latest = r
		}
	}
	return latest
}

// recurringAnchor picks the date the next RECURRING cadence counts from:
// the most recent RECURRING record's submission date, or the start date
// when no RECURRING record exists yet. An outstanding unsubmitted
// RECURRING record blocks the next one, so ok is false in that case.
func recurringAnchor(startDate time.Time, existing []ReviewRecord) (anchor time.Time, ok bool) {
	latest := latestRecurring(existing)
	if latest == nil {
		return startDate, true
	}
	if latest.SubmittedDate == nil {
		return time.Time{}, false
	}
	return *latest.SubmittedDate, true
}

// MilestoneDueDate re-derives a single type's due date from the raw
// formulas, without the sequential gating ResolveNextMilestone applies.
// ok is false only for a RECURRING whose cadence has no anchor yet.
func MilestoneDueDate(milestoneType string, startDate time.Time, existing []ReviewRecord) (time.Time, bool) {
	start := truncateToDay(startDate)
	switch milestoneType {
	case TypeMonth1:
		return AddDays(start, month1Offset), true
	case TypeMonth3:
		return AddDays(start, month3Offset), true
	case TypeMonth5:
		return AddDays(start, month5Offset), true
	case TypeRecurring:
		anchor, ok := recurringAnchor(start, existing)
		if !ok {
			return time.Time{}, false
		}
		return AddDays(truncateToDay(anchor), recurringCadence), true
	}
	return time.Time{}, false
}

// ResolveNextMilestone returns the single next-due milestone for a staff
// member, or nil when nothing is due yet. Evaluation is ordered and stops
// at the first match: MONTH_1 has no elapsed-time floor and is always the
// answer when absent; MONTH_3 and MONTH_5 require 60 and 120 elapsed days
// before they are considered; RECURRING runs on a 180-day cadence and is
// only surfaced within 7 days of its due date.
func ResolveNextMilestone(startDate time.Time, existing []ReviewRecord, now time.Time) *Milestone {
	start := truncateToDay(startDate)
	elapsed := DaysEmployed(start, now)

	if !hasType(existing, TypeMonth1) {
		m := newMilestone(TypeMonth1, AddDays(start, month1Offset), now)
		return &m
	}
	if !hasType(existing, TypeMonth3) && elapsed >= month3Floor {
		m := newMilestone(TypeMonth3, AddDays(start, month3Offset), now)
		return &m
	}
	if !hasType(existing, TypeMonth5) && elapsed >= month5Floor {
		m := newMilestone(TypeMonth5, AddDays(start, month5Offset), now)
		return &m
	}
	if elapsed >= recurringFloor {
		due, ok := MilestoneDueDate(TypeRecurring, start, existing)
		if !ok {
			return nil
		}
		m := newMilestone(TypeRecurring, due, now)
		if m.DaysUntilDue > dueSoonWindow {
			return nil
		}
		return &m
	}
	return nil
}

// FullSchedule returns all four milestones unconditionally, derived from
// the start date alone; existing reviews never gate the preview. The
// RECURRING entry always shows the first cadence slot after the start
// date. Preview only; never used for creation decisions.
func FullSchedule(startDate time.Time, now time.Time) []Milestone {
	start := truncateToDay(startDate)
	schedule := make([]Milestone, 0, len(MilestoneOrder))
	for _, milestoneType := range MilestoneOrder {
		var due time.Time
		switch milestoneType {
		case TypeMonth1:
			due = AddDays(start, month1Offset)
		case TypeMonth3:
			due = AddDays(start, month3Offset)
		case TypeMonth5:
			due = AddDays(start, month5Offset)
		case TypeRecurring:
			due = AddDays(start, recurringCadence)
		}
		schedule = append(schedule, newMilestone(milestoneType, due, now))
	}
	return schedule
}

// InCreationWindow reports whether now falls inside the auto-creation
// window for a due date: from seven days before the due date up to, but
// not including, the due date itself.
func InCreationWindow(dueDate, now time.Time) bool {
	day := truncateToDay(now)
	due := truncateToDay(dueDate)
	createDate := AddDays(due, -creationLead)
	return !day.Before(createDate) && day.Before(due)
}

// EvaluationPeriod renders the descriptive period string stored on a
// newly created review, counting days from the start date to the due date.
func EvaluationPeriod(startDate, dueDate time.Time) string {
	return fmt.Sprintf("Day 1 to Day %d", DaysEmployed(startDate, dueDate))
}
