package department_test

import (
	"context"
	"database/sql"
	"testing"

	"staffhub/internal/department"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn  func(ctx context.Context, d *department.Department) error
	findFn    func(ctx context.Context, companyID, id string) (*department.Department, error)
	findAllFn func(ctx context.Context, companyID string) ([]department.Department, error)
	updateFn  func(ctx context.Context, d *department.Department) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) department.Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, d *department.Department) error {
	return f.createFn(ctx, d)
}
func (f *fakeRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*department.Department, error) {
	return f.findFn(ctx, companyID, id)
}
func (f *fakeRepo) FindByCode(ctx context.Context, companyID, code string) (*department.Department, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRepo) FindAllByCompany(ctx context.Context, companyID string) ([]department.Department, error) {
	return f.findAllFn(ctx, companyID)
}
func (f *fakeRepo) Update(ctx context.Context, d *department.Department) error {
	return f.updateFn(ctx, d)
}
func (f *fakeRepo) Delete(ctx context.Context, companyID, id string) error { return nil }

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("uppercases routing code", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeRepo{
			createFn: func(ctx context.Context, d *department.Department) error {
				assert.Equal(t, "OPERATIONS", d.Code)
				return nil
			},
		}
		svc := department.NewService(db, repo)

		resp, err := svc.Create(ctx, companyID, department.CreateDepartmentRequest{
			Name: "Operations",
			Code: "operations",
		})
		assert.NoError(t, err)
		assert.Equal(t, "OPERATIONS", resp.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate code maps to conflict", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeRepo{
			createFn: func(ctx context.Context, d *department.Department) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_department_company_code"}
			},
		}
		svc := department.NewService(db, repo)

		_, err := svc.Create(ctx, companyID, department.CreateDepartmentRequest{Name: "IT", Code: "IT"})
		assert.ErrorIs(t, err, department.ErrCodeAlreadyTaken)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	deptID := uuid.New()

	t.Run("missing department maps to not found", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeRepo{
			findFn: func(ctx context.Context, cid, id string) (*department.Department, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := department.NewService(db, repo)

		_, err := svc.Update(ctx, companyID.String(), deptID.String(), department.UpdateDepartmentRequest{Name: "People"})
		assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	})

	t.Run("renames and recodes", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeRepo{
			findFn: func(ctx context.Context, cid, id string) (*department.Department, error) {
				return &department.Department{ID: deptID, CompanyID: companyID, Name: "HR", Code: "HR"}, nil
			},
			updateFn: func(ctx context.Context, d *department.Department) error {
				assert.Equal(t, "People Ops", d.Name)
				assert.Equal(t, "PEOPLE", d.Code)
				return nil
			},
		}
		svc := department.NewService(db, repo)

		resp, err := svc.Update(ctx, companyID.String(), deptID.String(), department.UpdateDepartmentRequest{
			Name: "People Ops",
			Code: "people",
		})
		assert.NoError(t, err)
		assert.Equal(t, "PEOPLE", resp.Code)
	})
}
