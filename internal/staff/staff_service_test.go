package staff_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"staffhub/internal/messaging/kafka"
	"staffhub/internal/staff"
	stafferrors "staffhub/internal/staff/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	createFn  func(ctx context.Context, s *staff.Staff) error
	findFn    func(ctx context.Context, companyID, id string) (*staff.Staff, error)
	findAllFn func(ctx context.Context, companyID string) ([]staff.Staff, error)
	updateFn  func(ctx context.Context, s *staff.Staff) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) staff.Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, s *staff.Staff) error {
	return f.createFn(ctx, s)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*staff.Staff, error) {
	return nil, nil
}
func (f *fakeRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*staff.Staff, error) {
	return f.findFn(ctx, companyID, id)
}
func (f *fakeRepo) FindAllByCompany(ctx context.Context, companyID string) ([]staff.Staff, error) {
	return f.findAllFn(ctx, companyID)
}
func (f *fakeRepo) FindAllForScheduling(ctx context.Context, companyID string) ([]staff.Staff, error) {
	return nil, nil
}
func (f *fakeRepo) Update(ctx context.Context, s *staff.Staff) error {
	return f.updateFn(ctx, s)
}
func (f *fakeRepo) Delete(ctx context.Context, companyID, id string) error { return nil }

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, companyID, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error               { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	repo      *fakeRepo
	counter   *fakeCounter
	outbox    *fakeOutbox
	redisMock redismock.ClientMock
	service   staff.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	rdb, redisMock := redismock.NewClientMock()

	repo := &fakeRepo{}
	counterRepo := &fakeCounter{}
	outboxRepo := &fakeOutbox{}

	svc := staff.NewServiceWithOutbox(db, repo, counterRepo, outboxRepo, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      repo,
		counter:   counterRepo,
		outbox:    outboxRepo,
		redisMock: redisMock,
		service:   svc,
	}
}

func TestStaffService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("auto generates staff number and writes outbox event", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		start := "2026-01-05"
		req := staff.CreateStaffRequest{
			FullName:  "Dewi Lestari",
			Email:     "dewi@example.com",
			StartDate: &start,
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.createFn = func(ctx context.Context, s *staff.Staff) error {
			assert.Equal(t, "STF-000001", s.StaffNumber)
			assert.Equal(t, companyID, s.CompanyID.String())
			assert.Equal(t, staff.StatusProbation, s.EmploymentStatus)
			assert.NotNil(t, s.StartDate)
			return nil
		}
		deps.redisMock.ExpectDel(staff.GetStaffOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, req)

		assert.NoError(t, err)
		assert.Equal(t, "STF-000001", resp.StaffNumber)
		assert.Equal(t, staff.StatusProbation, resp.EmploymentStatus)

		assert.Len(t, deps.outbox.events, 1)
		assert.Equal(t, "staff.created", deps.outbox.events[0].EventType)
		assert.Equal(t, resp.ID, deps.outbox.events[0].AggregateID)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("rejects malformed start date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		bad := "05/01/2026"
		_, err := deps.service.Create(ctx, companyID, staff.CreateStaffRequest{
			FullName:  "Dewi Lestari",
			Email:     "dewi@example.com",
			StartDate: &bad,
		})
		assert.ErrorIs(t, err, stafferrors.ErrInvalidStartDate)
	})

	t.Run("duplicate email becomes conflict error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.createFn = func(ctx context.Context, s *staff.Staff) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_staff_email"}
		}

		_, err := deps.service.Create(ctx, companyID, staff.CreateStaffRequest{
			FullName: "Dewi Lestari",
			Email:    "dewi@example.com",
		})
		assert.ErrorIs(t, err, stafferrors.ErrStaffAlreadyExists)
	})
}

func TestStaffService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	staffID := uuid.New()

	existing := func(start *time.Time, status string) *staff.Staff {
		return &staff.Staff{
			ID:               staffID,
			CompanyID:        companyID,
			FullName:         "Dewi Lestari",
			Email:            "dewi@example.com",
			StaffNumber:      "STF-000001",
			StartDate:        start,
			EmploymentStatus: status,
		}
	}

	t.Run("start date can be set once", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.findFn = func(ctx context.Context, cid, id string) (*staff.Staff, error) {
			return existing(nil, staff.StatusProbation), nil
		}
		deps.repo.updateFn = func(ctx context.Context, s *staff.Staff) error { return nil }
		deps.redisMock.ExpectDel(staff.GetStaffOptionsKey(companyID.String())).SetVal(1)

		start := "2026-02-01"
		resp, err := deps.service.Update(ctx, companyID.String(), staffID.String(), staff.UpdateStaffRequest{
			StartDate: &start,
		})
		assert.NoError(t, err)
		assert.NotNil(t, resp.StartDate)
		assert.Equal(t, "2026-02-01", *resp.StartDate)
	})

	t.Run("start date is immutable once set", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		anchored := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
		deps.repo.findFn = func(ctx context.Context, cid, id string) (*staff.Staff, error) {
			return existing(&anchored, staff.StatusProbation), nil
		}

		later := "2026-03-01"
		_, err := deps.service.Update(ctx, companyID.String(), staffID.String(), staff.UpdateStaffRequest{
			StartDate: &later,
		})
		assert.ErrorIs(t, err, stafferrors.ErrStartDateImmutable)
	})

	t.Run("employment status only moves forward", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.findFn = func(ctx context.Context, cid, id string) (*staff.Staff, error) {
			return existing(nil, staff.StatusRegular), nil
		}

		_, err := deps.service.Update(ctx, companyID.String(), staffID.String(), staff.UpdateStaffRequest{
			EmploymentStatus: staff.StatusProbation,
		})
		assert.ErrorIs(t, err, stafferrors.ErrInvalidStatusTransition)
	})

	t.Run("probation promotes to regular", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.findFn = func(ctx context.Context, cid, id string) (*staff.Staff, error) {
			return existing(nil, staff.StatusProbation), nil
		}
		deps.repo.updateFn = func(ctx context.Context, s *staff.Staff) error {
			assert.Equal(t, staff.StatusRegular, s.EmploymentStatus)
			return nil
		}
		deps.redisMock.ExpectDel(staff.GetStaffOptionsKey(companyID.String())).SetVal(1)

		resp, err := deps.service.Update(ctx, companyID.String(), staffID.String(), staff.UpdateStaffRequest{
			EmploymentStatus: staff.StatusRegular,
		})
		assert.NoError(t, err)
		assert.Equal(t, staff.StatusRegular, resp.EmploymentStatus)
	})
}

func TestStaffService_GetOptions(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []staff.StaffResponse{{ID: uuid.New().String(), FullName: "Dewi Lestari"}}
		payload, _ := json.Marshal(cached)
		deps.redisMock.ExpectGet(staff.GetStaffOptionsKey(companyID.String())).SetVal(string(payload))

		deps.repo.findAllFn = func(ctx context.Context, cid string) ([]staff.Staff, error) {
			t.Fatal("repository must not be queried on cache hit")
			return nil, nil
		}

		resp, err := deps.service.GetOptions(ctx, companyID.String())
		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and populates", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		key := staff.GetStaffOptionsKey(companyID.String())
		deps.redisMock.ExpectGet(key).RedisNil()

		rows := []staff.Staff{{
			ID:               uuid.New(),
			CompanyID:        companyID,
			FullName:         "Dewi Lestari",
			Email:            "dewi@example.com",
			StaffNumber:      "STF-000001",
			EmploymentStatus: staff.StatusProbation,
		}}
		deps.repo.findAllFn = func(ctx context.Context, cid string) ([]staff.Staff, error) {
			assert.Equal(t, companyID.String(), cid)
			return rows, nil
		}

		expected, _ := json.Marshal([]staff.StaffResponse{{
			ID:               rows[0].ID.String(),
			CompanyID:        companyID.String(),
			FullName:         "Dewi Lestari",
			Email:            "dewi@example.com",
			StaffNumber:      "STF-000001",
			EmploymentStatus: staff.StatusProbation,
		}})
		deps.redisMock.ExpectSet(key, expected, 10*time.Minute).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, companyID.String())
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "STF-000001", resp[0].StaffNumber)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}
