package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func startDaysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func submittedAt(start time.Time, day int) *time.Time {
	t := start.AddDate(0, 0, day)
	return &t
}

func TestDaysEmployed(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysEmployed(start, start))
	assert.Equal(t, 30, DaysEmployed(start, start.AddDate(0, 0, 30)))
	// Time-of-day never changes the count.
	assert.Equal(t, 30, DaysEmployed(start, start.AddDate(0, 0, 30).Add(23*time.Hour)))
	// Future start dates yield a negative count; callers guard.
	assert.Equal(t, -10, DaysEmployed(start, start.AddDate(0, 0, -10)))
}

func TestAddDays_DoesNotMutateInput(t *testing.T) {
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	shifted := AddDays(date, 14)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), shifted)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), date)
}

func TestResolveNextMilestone_NoHistoryAlwaysMonth1(t *testing.T) {
	cases := []struct {
		name     string
		daysAgo  int
		overdue  bool
		status   string
	}{
		{name: "just started", daysAgo: 1, overdue: false, status: StatusTagNotSent},
		{name: "five days overdue", daysAgo: 35, overdue: true, status: StatusTagOverdue},
		{name: "long past with no history", daysAgo: 400, overdue: true, status: StatusTagOverdue},
		{name: "future start date", daysAgo: -20, overdue: false, status: StatusTagNotSent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := startDaysAgo(tc.daysAgo)
			m := ResolveNextMilestone(start, nil, testNow)

			if assert.NotNil(t, m) {
				assert.Equal(t, TypeMonth1, m.Type)
				assert.Equal(t, 30-tc.daysAgo, m.DaysUntilDue)
				assert.Equal(t, tc.overdue, m.IsOverdue)
				assert.Equal(t, tc.status, m.Status)
			}
		})
	}
}

func TestResolveNextMilestone_Month1FiveDaysOverdue(t *testing.T) {
	start := startDaysAgo(35)
	m := ResolveNextMilestone(start, nil, testNow)

	if assert.NotNil(t, m) {
		assert.Equal(t, TypeMonth1, m.Type)
		assert.Equal(t, AddDays(truncateToDay(start), 30), m.DueDate)
		assert.Equal(t, -5, m.DaysUntilDue)
		assert.True(t, m.IsOverdue)
		assert.Equal(t, StatusTagOverdue, m.Status)
	}
}

func TestResolveNextMilestone_Month1ExistsBeforeFloor(t *testing.T) {
	start := startDaysAgo(45)
	existing := []ReviewRecord{{Type: TypeMonth1}}

	assert.Nil(t, ResolveNextMilestone(start, existing, testNow))
}

func TestResolveNextMilestone_Month3AfterFloor(t *testing.T) {
	start := startDaysAgo(65)
	existing := []ReviewRecord{{Type: TypeMonth1, Status: StatusSubmitted}}

	m := ResolveNextMilestone(start, existing, testNow)
	if assert.NotNil(t, m) {
		assert.Equal(t, TypeMonth3, m.Type)
		assert.Equal(t, AddDays(truncateToDay(start), 90), m.DueDate)
		assert.Equal(t, 25, m.DaysUntilDue)
		assert.Equal(t, StatusTagNotSent, m.Status)
	}
}

func TestResolveNextMilestone_Month5DueSoon(t *testing.T) {
	start := startDaysAgo(145)
	existing := []ReviewRecord{{Type: TypeMonth1}, {Type: TypeMonth3}}

	m := ResolveNextMilestone(start, existing, testNow)
	if assert.NotNil(t, m) {
		assert.Equal(t, TypeMonth5, m.Type)
		assert.Equal(t, 5, m.DaysUntilDue)
		assert.False(t, m.IsOverdue)
		assert.Equal(t, StatusTagDueSoon, m.Status)
	}
}

func TestResolveNextMilestone_RecurringNotSurfacedEarly(t *testing.T) {
	start := startDaysAgo(160)
	existing := []ReviewRecord{{Type: TypeMonth1}, {Type: TypeMonth3}, {Type: TypeMonth5}}

	// First recurring due at day 180, twenty days out: beyond the window.
	assert.Nil(t, ResolveNextMilestone(start, existing, testNow))
}

func TestResolveNextMilestone_FirstRecurringFromStartDate(t *testing.T) {
	start := startDaysAgo(178)
	existing := []ReviewRecord{{Type: TypeMonth1}, {Type: TypeMonth3}, {Type: TypeMonth5}}

	m := ResolveNextMilestone(start, existing, testNow)
	if assert.NotNil(t, m) {
		assert.Equal(t, TypeRecurring, m.Type)
		assert.Equal(t, AddDays(truncateToDay(start), 180), m.DueDate)
		assert.Equal(t, 2, m.DaysUntilDue)
		assert.Equal(t, StatusTagDueSoon, m.Status)
	}
}

func TestResolveNextMilestone_RecurringCadenceFromSubmission(t *testing.T) {
	start := startDaysAgo(365)
	existing := []ReviewRecord{
		{Type: TypeMonth1},
		{Type: TypeMonth3},
		{Type: TypeMonth5},
		{
			Type:          TypeRecurring,
			DueDate:       AddDays(truncateToDay(start), 180),
			SubmittedDate: submittedAt(truncateToDay(start), 190),
		},
	}

	// Next cadence counts from the submission on day 190: due day 370.
	m := ResolveNextMilestone(start, existing, testNow)
	if assert.NotNil(t, m) {
		assert.Equal(t, TypeRecurring, m.Type)
		assert.Equal(t, AddDays(truncateToDay(start), 370), m.DueDate)
		assert.Equal(t, 5, m.DaysUntilDue)
		assert.Equal(t, StatusTagDueSoon, m.Status)
	}
}

func TestResolveNextMilestone_OutstandingRecurringBlocksNext(t *testing.T) {
	start := startDaysAgo(400)
	existing := []ReviewRecord{
		{Type: TypeMonth1},
		{Type: TypeMonth3},
		{Type: TypeMonth5},
		{Type: TypeRecurring, DueDate: AddDays(truncateToDay(start), 180)},
	}

	assert.Nil(t, ResolveNextMilestone(start, existing, testNow))
}

func TestFullSchedule_AlwaysReturnsFourMilestones(t *testing.T) {
	start := startDaysAgo(200)

	schedule := FullSchedule(start, testNow)

	if assert.Len(t, schedule, 4) {
		assert.Equal(t, TypeMonth1, schedule[0].Type)
		assert.Equal(t, TypeMonth3, schedule[1].Type)
		assert.Equal(t, TypeMonth5, schedule[2].Type)
		assert.Equal(t, TypeRecurring, schedule[3].Type)
		assert.Equal(t, AddDays(truncateToDay(start), 30), schedule[0].DueDate)
		assert.Equal(t, AddDays(truncateToDay(start), 180), schedule[3].DueDate)
	}
}

func TestInCreationWindow(t *testing.T) {
	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	assert.False(t, InCreationWindow(due, due.AddDate(0, 0, -8)), "before the window opens")
	assert.True(t, InCreationWindow(due, due.AddDate(0, 0, -7)), "window opens seven days ahead")
	assert.True(t, InCreationWindow(due, due.AddDate(0, 0, -1)), "day before due")
	assert.False(t, InCreationWindow(due, due), "due date itself is excluded")
	assert.False(t, InCreationWindow(due, due.AddDate(0, 0, 3)), "past due")
}

func TestEvaluationPeriod(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Day 1 to Day 30", EvaluationPeriod(start, AddDays(start, 30)))
	assert.Equal(t, "Day 1 to Day 150", EvaluationPeriod(start, AddDays(start, 150)))
}
