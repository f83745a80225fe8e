package timetracking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	timetrackingerrors "staffhub/internal/timetracking/errors"
)

type fakeRepo struct {
	saved *TimeEntry
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, e *TimeEntry) error {
	stored := *e
	f.saved = &stored
	return nil
}
func (f *fakeRepo) FindByStaffAndDate(ctx context.Context, companyID, staffID string, date time.Time) (*TimeEntry, error) {
	if f.saved == nil {
		return nil, gorm.ErrRecordNotFound
	}
	snapshot := *f.saved
	return &snapshot, nil
}
func (f *fakeRepo) FindAllByCompany(ctx context.Context, companyID string) ([]TimeEntry, error) {
	return nil, nil
}
func (f *fakeRepo) FindAllByStaff(ctx context.Context, companyID, staffID string) ([]TimeEntry, error) {
	return nil, nil
}
func (f *fakeRepo) Update(ctx context.Context, e *TimeEntry) error {
	stored := *e
	f.saved = &stored
	return nil
}

func newClockService(t *testing.T, at time.Time) (Service, *fakeRepo, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeRepo{}
	svc := NewService(db, repo).(*service)
	svc.now = func() time.Time { return at }
	return svc, repo, mock, func() { db.Close() }
}

func TestClockIn_OnTimeAndLate(t *testing.T) {
	onTime := time.Date(2026, 8, 3, 9, 10, 0, 0, time.UTC)
	late := time.Date(2026, 8, 3, 9, 16, 0, 0, time.UTC)
	companyID := uuid.New().String()
	staffID := uuid.New().String()

	svc, _, mock, closeDB := newClockService(t, onTime)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.ClockIn(context.Background(), companyID, staffID, ClockInRequest{})
	assert.NoError(t, err)
	assert.Equal(t, StatusOnTime, resp.Status)

	lateSvc, _, lateMock, closeLate := newClockService(t, late)
	defer closeLate()

	lateMock.ExpectBegin()
	lateMock.ExpectCommit()
	resp, err = lateSvc.ClockIn(context.Background(), companyID, staffID, ClockInRequest{})
	assert.NoError(t, err)
	assert.Equal(t, StatusLate, resp.Status)
}

func TestClockIn_DuplicateRejected(t *testing.T) {
	at := time.Date(2026, 8, 3, 8, 0, 0, 0, time.UTC)
	companyID := uuid.New().String()
	staffID := uuid.New().String()

	svc, _, mock, closeDB := newClockService(t, at)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.ClockIn(context.Background(), companyID, staffID, ClockInRequest{})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.ClockIn(context.Background(), companyID, staffID, ClockInRequest{})
	assert.ErrorIs(t, err, timetrackingerrors.ErrAlreadyClockedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClockOut_ComputesWorkedMinutes(t *testing.T) {
	in := time.Date(2026, 8, 3, 8, 0, 0, 0, time.UTC)
	companyID := uuid.New().String()
	staffID := uuid.New().String()

	svc, repo, mock, closeDB := newClockService(t, in)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.ClockIn(context.Background(), companyID, staffID, ClockInRequest{})
	assert.NoError(t, err)

	svc.(*service).now = func() time.Time { return in.Add(8*time.Hour + 30*time.Minute) }

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.ClockOut(context.Background(), companyID, staffID, ClockOutRequest{})
	assert.NoError(t, err)
	assert.NotNil(t, resp.ClockOut)
	assert.Equal(t, 510, resp.WorkedMinutes)
	assert.NotNil(t, repo.saved.ClockOut)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.ClockOut(context.Background(), companyID, staffID, ClockOutRequest{})
	assert.ErrorIs(t, err, timetrackingerrors.ErrAlreadyClockedOut)
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	at := time.Date(2026, 8, 3, 17, 0, 0, 0, time.UTC)

	svc, _, mock, closeDB := newClockService(t, at)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockOut(context.Background(), uuid.New().String(), uuid.New().String(), ClockOutRequest{})
	assert.ErrorIs(t, err, timetrackingerrors.ErrNotClockedIn)
}
