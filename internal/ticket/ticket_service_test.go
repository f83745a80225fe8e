package ticket

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"staffhub/internal/department"
	ticketerrors "staffhub/internal/ticket/errors"
)

type fakeRepo struct {
	tickets map[string]*Ticket
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tickets: make(map[string]*Ticket)}
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, t *Ticket) error {
	stored := *t
	f.tickets[t.ID.String()] = &stored
	return nil
}
func (f *fakeRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Ticket, error) {
	t, ok := f.tickets[id]
	if !ok || t.CompanyID.String() != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	snapshot := *t
	return &snapshot, nil
}
func (f *fakeRepo) FindAllByCompany(ctx context.Context, companyID string) ([]Ticket, error) {
	var rows []Ticket
	for _, t := range f.tickets {
		if t.CompanyID.String() == companyID {
			rows = append(rows, *t)
		}
	}
	return rows, nil
}
func (f *fakeRepo) FindAllByStaff(ctx context.Context, staffID string) ([]Ticket, error) {
	return nil, nil
}
func (f *fakeRepo) Update(ctx context.Context, t *Ticket) error {
	stored := *t
	f.tickets[t.ID.String()] = &stored
	return nil
}

type fakeDeptRepo struct {
	byCode map[string]*department.Department
}

func (f *fakeDeptRepo) WithTx(tx *sql.Tx) department.Repository { return f }
func (f *fakeDeptRepo) Create(ctx context.Context, d *department.Department) error {
	return nil
}
func (f *fakeDeptRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*department.Department, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeDeptRepo) FindByCode(ctx context.Context, companyID, code string) (*department.Department, error) {
	d, ok := f.byCode[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}
func (f *fakeDeptRepo) FindAllByCompany(ctx context.Context, companyID string) ([]department.Department, error) {
	return nil, nil
}
func (f *fakeDeptRepo) Update(ctx context.Context, d *department.Department) error { return nil }
func (f *fakeDeptRepo) Delete(ctx context.Context, companyID, id string) error     { return nil }

type fakeCounter struct{ next int64 }

func (f *fakeCounter) GetNextValue(ctx context.Context, companyID, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func TestRouteCategory(t *testing.T) {
	assert.Equal(t, "IT", RouteCategory(CategoryIT))
	assert.Equal(t, "HR", RouteCategory(CategoryHR))
	assert.Equal(t, "FINANCE", RouteCategory(CategoryFinance))
	assert.Equal(t, "OPERATIONS", RouteCategory(CategoryOperations))
	// Facilities and anything unrecognized fall back to operations.
	assert.Equal(t, "OPERATIONS", RouteCategory(CategoryFacilities))
	assert.Equal(t, "OPERATIONS", RouteCategory("GARDENING"))
}

func TestCreate_RoutesToDepartment(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	itDept := &department.Department{ID: uuid.New(), Code: "IT"}
	opsDept := &department.Department{ID: uuid.New(), Code: "OPERATIONS"}
	deptRepo := &fakeDeptRepo{byCode: map[string]*department.Department{
		"IT":         itDept,
		"OPERATIONS": opsDept,
	}}

	repo := newFakeRepo()
	svc := NewService(db, repo, deptRepo, &fakeCounter{})

	companyID := uuid.New().String()
	staffID := uuid.New().String()

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), companyID, staffID, CreateTicketRequest{
		Category:    CategoryIT,
		Subject:     "Laptop will not boot",
		Description: "Stuck on vendor logo since this morning.",
	})
	assert.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, itDept.ID.String(), resp.DepartmentID)
	assert.Equal(t, "TKT-000001", resp.TicketNumber)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err = svc.Create(context.Background(), companyID, staffID, CreateTicketRequest{
		Category:    CategoryFacilities,
		Subject:     "Broken desk",
		Description: "Leg snapped off.",
	})
	assert.NoError(t, err)
	assert.Equal(t, opsDept.ID.String(), resp.DepartmentID, "facilities tickets route to operations")
	assert.Equal(t, "TKT-000002", resp.TicketNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_MissingRoutingTarget(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeRepo(), &fakeDeptRepo{byCode: map[string]*department.Department{}}, &fakeCounter{})

	_, err := svc.Create(context.Background(), uuid.New().String(), uuid.New().String(), CreateTicketRequest{
		Category:    CategoryIT,
		Subject:     "x",
		Description: "y",
	})
	assert.ErrorIs(t, err, ticketerrors.ErrNoRoutingTarget)
}

func TestTransition_ForwardOnly(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	deptRepo := &fakeDeptRepo{byCode: map[string]*department.Department{
		"HR": {ID: uuid.New(), Code: "HR"},
	}}
	repo := newFakeRepo()
	svc := NewService(db, repo, deptRepo, &fakeCounter{})

	companyID := uuid.New().String()

	mock.ExpectBegin()
	mock.ExpectCommit()
	created, err := svc.Create(context.Background(), companyID, uuid.New().String(), CreateTicketRequest{
		Category:    CategoryHR,
		Subject:     "Payslip question",
		Description: "Deductions look off.",
	})
	assert.NoError(t, err)

	resp, err := svc.Transition(context.Background(), companyID, created.ID, StatusInProgress)
	assert.NoError(t, err)
	assert.Equal(t, StatusInProgress, resp.Status)

	// Backwards is rejected.
	_, err = svc.Transition(context.Background(), companyID, created.ID, StatusPending)
	assert.ErrorIs(t, err, ticketerrors.ErrInvalidStatusTransition)

	resp, err = svc.Transition(context.Background(), companyID, created.ID, StatusResolved)
	assert.NoError(t, err)
	assert.NotNil(t, resp.ResolvedAt)

	resp, err = svc.Transition(context.Background(), companyID, created.ID, StatusClosed)
	assert.NoError(t, err)
	assert.Equal(t, StatusClosed, resp.Status)

	_, err = svc.Transition(context.Background(), companyID, created.ID, StatusClosed)
	assert.ErrorIs(t, err, ticketerrors.ErrTicketClosed)
}
