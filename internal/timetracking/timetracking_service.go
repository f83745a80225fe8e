package timetracking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	timetrackingerrors "staffhub/internal/timetracking/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusOnTime = "ON_TIME"
	StatusLate   = "LATE"
)

// Clock-ins after 09:15 UTC count as late.
const (
	lateCutoffHour   = 9
	lateCutoffMinute = 15
)

type Service interface {
	ClockIn(ctx context.Context, companyID, staffID string, req ClockInRequest) (TimeEntryResponse, error)
	ClockOut(ctx context.Context, companyID, staffID string, req ClockOutRequest) (TimeEntryResponse, error)
	GetAll(ctx context.Context, companyID, actorID string, canReadAll bool) ([]TimeEntryResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
	now  func() time.Time
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo, now: time.Now}
}

func (s *service) ClockIn(ctx context.Context, companyID, staffID string, req ClockInRequest) (TimeEntryResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimeEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	existing, err := qtx.FindByStaffAndDate(ctx, companyID, staffID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return TimeEntryResponse{}, err
	}
	if err == nil && existing != nil {
		return TimeEntryResponse{}, timetrackingerrors.ErrAlreadyClockedIn
	}

	status := StatusOnTime
	if now.Hour() > lateCutoffHour || (now.Hour() == lateCutoffHour && now.Minute() > lateCutoffMinute) {
		status = StatusLate
	}

	source := req.Source
	if source == "" {
		source = "MANUAL"
	}

	row := &TimeEntry{
		ID:        uuid.New(),
		CompanyID: uuid.MustParse(companyID),
		StaffID:   uuid.MustParse(staffID),
		WorkDate:  today,
		ClockIn:   now,
		Status:    status,
		Source:    source,
		Notes:     req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return TimeEntryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TimeEntryResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, companyID, staffID string, req ClockOutRequest) (TimeEntryResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimeEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	row, err := qtx.FindByStaffAndDate(ctx, companyID, staffID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimeEntryResponse{}, timetrackingerrors.ErrNotClockedIn
		}
		return TimeEntryResponse{}, err
	}
	if row.ClockOut != nil {
		return TimeEntryResponse{}, timetrackingerrors.ErrAlreadyClockedOut
	}

	row.ClockOut = &now
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		return TimeEntryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TimeEntryResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, companyID, actorID string, canReadAll bool) ([]TimeEntryResponse, error) {
	var (
		rows []TimeEntry
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAllByCompany(ctx, companyID)
	} else {
		if _, parseErr := uuid.Parse(actorID); parseErr != nil {
			return nil, timetrackingerrors.ErrInvalidActorID
		}
		rows, err = s.repo.FindAllByStaff(ctx, companyID, actorID)
	}
	if err != nil {
		return nil, err
	}
	res := make([]TimeEntryResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func mapToResponse(e TimeEntry) TimeEntryResponse {
	resp := TimeEntryResponse{
		ID:       e.ID.String(),
		StaffID:  e.StaffID.String(),
		WorkDate: e.WorkDate.Format("2006-01-02"),
		ClockIn:  e.ClockIn.Format(time.RFC3339),
		Status:   e.Status,
		Source:   e.Source,
		Notes:    e.Notes,
	}
	if e.ClockOut != nil {
		v := e.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
		resp.WorkedMinutes = int(e.ClockOut.Sub(e.ClockIn).Minutes())
	}
	return resp
}
