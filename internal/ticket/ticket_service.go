package ticket

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"staffhub/internal/department"
	"staffhub/internal/shared/counter"
	ticketerrors "staffhub/internal/ticket/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// statusRank orders the ticket lifecycle; a transition is valid only when
// it moves strictly forward. RESOLVED and CLOSED are both terminal ends,
// except a resolved ticket may still be closed.
var statusRank = map[string]int{
	StatusPending:    1,
	StatusInProgress: 2,
	StatusResolved:   3,
	StatusClosed:     4,
}

type Service interface {
	Create(ctx context.Context, companyID, staffID string, req CreateTicketRequest) (TicketResponse, error)
	GetAll(ctx context.Context, companyID string) ([]TicketResponse, error)
	GetMine(ctx context.Context, staffID string) ([]TicketResponse, error)
	GetByID(ctx context.Context, companyID, id string) (TicketResponse, error)
	Transition(ctx context.Context, companyID, id, nextStatus string) (TicketResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	deptRepo department.Repository
	counter  counter.Repository
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deptRepo department.Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("ticket.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ticket.service")
	}
	return &service{db: db, repo: repo, deptRepo: deptRepo, counter: counterRepo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID, staffID string, req CreateTicketRequest) (TicketResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TicketResponse{}, ticketerrors.ErrInvalidCompanyID
	}
	staffUUID, err := uuid.Parse(staffID)
	if err != nil {
		return TicketResponse{}, ticketerrors.ErrInvalidCompanyID
	}

	deptCode := RouteCategory(req.Category)
	dept, err := s.deptRepo.FindByCode(ctx, companyID, deptCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("ticket routing target missing",
				zap.String("company_id", companyID),
				zap.String("category", req.Category),
				zap.String("department_code", deptCode),
			)
			return TicketResponse{}, ticketerrors.ErrNoRoutingTarget
		}
		return TicketResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TicketResponse{}, err
	}
	defer tx.Rollback()

	nextVal, err := s.counter.GetNextValue(ctx, companyID, "ticket_number")
	if err != nil {
		return TicketResponse{}, err
	}

	row := &Ticket{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		StaffID:      staffUUID,
		TicketNumber: fmt.Sprintf("TKT-%06d", nextVal),
		Category:     req.Category,
		Subject:      req.Subject,
		Description:  req.Description,
		Status:       StatusPending,
		DepartmentID: dept.ID,
	}

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		return TicketResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TicketResponse{}, err
	}

	s.logger.Info("ticket created",
		zap.String("ticket_id", row.ID.String()),
		zap.String("ticket_number", row.TicketNumber),
		zap.String("category", row.Category),
		zap.String("department_code", deptCode),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]TicketResponse, error) {
	rows, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetMine(ctx context.Context, staffID string) ([]TicketResponse, error) {
	rows, err := s.repo.FindAllByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (TicketResponse, error) {
	row, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TicketResponse{}, ticketerrors.ErrTicketNotFound
		}
		return TicketResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Transition(ctx context.Context, companyID, id, nextStatus string) (TicketResponse, error) {
	nextRank, ok := statusRank[nextStatus]
	if !ok {
		return TicketResponse{}, ticketerrors.ErrInvalidStatusTransition
	}

	row, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TicketResponse{}, ticketerrors.ErrTicketNotFound
		}
		return TicketResponse{}, err
	}

	if row.Status == StatusClosed {
		return TicketResponse{}, ticketerrors.ErrTicketClosed
	}
	if nextRank <= statusRank[row.Status] {
		return TicketResponse{}, ticketerrors.ErrInvalidStatusTransition
	}

	row.Status = nextStatus
	if nextStatus == StatusResolved {
		resolvedAt := time.Now().UTC()
		row.ResolvedAt = &resolvedAt
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return TicketResponse{}, err
	}

	s.logger.Info("ticket transitioned",
		zap.String("ticket_id", row.ID.String()),
		zap.String("status", nextStatus),
	)
	return mapToResponse(*row), nil
}

func mapToResponse(t Ticket) TicketResponse {
	return TicketResponse{
		ID:           t.ID.String(),
		TicketNumber: t.TicketNumber,
		StaffID:      t.StaffID.String(),
		Category:     t.Category,
		Subject:      t.Subject,
		Description:  t.Description,
		Status:       t.Status,
		DepartmentID: t.DepartmentID.String(),
		ResolvedAt:   t.ResolvedAt,
		CreatedAt:    t.CreatedAt,
	}
}

func mapToListResponse(rows []Ticket) []TicketResponse {
	res := make([]TicketResponse, len(rows))
	for i, t := range rows {
		res[i] = mapToResponse(t)
	}
	return res
}
