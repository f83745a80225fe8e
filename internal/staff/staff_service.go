package staff

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"staffhub/internal/events"
	"staffhub/internal/messaging/kafka"
	"staffhub/internal/shared/contextutil"
	"staffhub/internal/shared/counter"
	stafferrors "staffhub/internal/staff/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	StatusProbation  = "PROBATION"
	StatusRegular    = "REGULAR"
	StatusTerminated = "TERMINATED"
)

const StaffOptionsKeyPrefix = "staff:options:"

func GetStaffOptionsKey(companyID string) string {
	return StaffOptionsKeyPrefix + companyID
}

type Service interface {
	Create(ctx context.Context, companyID string, req CreateStaffRequest) (StaffResponse, error)
	GetAll(ctx context.Context, companyID string) ([]StaffResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]StaffResponse, error)
	GetByID(ctx context.Context, companyID, id string) (StaffResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("staff.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateStaffRequest) (StaffResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create staff requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("email", req.Email),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidCompanyID
	}

	var startDate *time.Time
	if req.StartDate != nil && *req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			s.logger.Warn("create staff invalid start_date",
				zap.String("start_date", *req.StartDate),
				zap.Error(err),
			)
			return StaffResponse{}, stafferrors.ErrInvalidStartDate
		}
		startDate = &parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create staff begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return StaffResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.StaffNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, companyID, "staff_number")
		if err != nil {
			s.logger.Error("create staff generate number failed", zap.Error(err))
			return StaffResponse{}, err
		}
		req.StaffNumber = fmt.Sprintf("STF-%06d", nextVal)
	}

	row := &Staff{
		ID:               uuid.New(),
		CompanyID:        companyUUID,
		FullName:         req.FullName,
		Email:            req.Email,
		StaffNumber:      req.StaffNumber,
		Phone:            req.Phone,
		StartDate:        startDate,
		EmploymentStatus: StatusProbation,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create staff persist failed", zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.StaffCreatedEvent{
			EventType:  "staff.created",
			StaffID:    row.ID.String(),
			CompanyID:  companyID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return StaffResponse{}, err
		}
		outboxEvent := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "staff",
			AggregateID:   row.ID.String(),
			EventType:     event.EventType,
			Topic:         events.StaffCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			s.logger.Error("create staff outbox write failed", zap.Error(err))
			return StaffResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create staff commit failed", zap.Error(err))
		return StaffResponse{}, err
	}

	s.invalidateOptionsCache(ctx, companyID)
	s.logger.Info("create staff success",
		zap.String("staff_id", row.ID.String()),
		zap.String("company_id", companyID),
	)

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]StaffResponse, error) {
	rows, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetOptions(ctx context.Context, companyID string) ([]StaffResponse, error) {
	cacheKey := GetStaffOptionsKey(companyID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []StaffResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Coalesce concurrent cache misses into a single DB query per company
	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		rows, err := s.repo.FindAllByCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}
		resp := mapToListResponse(rows)

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				_ = s.rdb.Set(ctx, cacheKey, payload, 10*time.Minute).Err()
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]StaffResponse), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (StaffResponse, error) {
	row, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StaffResponse{}, stafferrors.ErrStaffNotFound
		}
		return StaffResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateStaffRequest) (StaffResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StaffResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StaffResponse{}, stafferrors.ErrStaffNotFound
		}
		return StaffResponse{}, err
	}

	if req.StartDate != nil && *req.StartDate != "" {
		if row.StartDate != nil {
			return StaffResponse{}, stafferrors.ErrStartDateImmutable
		}
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return StaffResponse{}, stafferrors.ErrInvalidStartDate
		}
		row.StartDate = &parsed
	}

	if req.EmploymentStatus != "" && req.EmploymentStatus != row.EmploymentStatus {
		if !isForwardStatusTransition(row.EmploymentStatus, req.EmploymentStatus) {
			s.logger.Warn("update staff invalid status transition",
				zap.String("staff_id", id),
				zap.String("from_status", row.EmploymentStatus),
				zap.String("to_status", req.EmploymentStatus),
			)
			return StaffResponse{}, stafferrors.ErrInvalidStatusTransition
		}
		row.EmploymentStatus = req.EmploymentStatus
	}

	if req.FullName != "" {
		row.FullName = req.FullName
	}
	if req.Phone != nil {
		row.Phone = req.Phone
	}

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("update staff persist failed", zap.String("staff_id", id), zap.Error(err))
		return StaffResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return StaffResponse{}, err
	}

	s.invalidateOptionsCache(ctx, companyID)
	s.logger.Info("update staff success",
		zap.String("staff_id", id),
		zap.String("employment_status", row.EmploymentStatus),
	)
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateOptionsCache(ctx, companyID)
	return nil
}

// isForwardStatusTransition enforces PROBATION -> REGULAR -> TERMINATED,
// forward only.
func isForwardStatusTransition(current, target string) bool {
	rank := map[string]int{
		StatusProbation:  1,
		StatusRegular:    2,
		StatusTerminated: 3,
	}

	currentRank, ok1 := rank[current]
	targetRank, ok2 := rank[target]
	if !ok1 || !ok2 {
		return false
	}
	return targetRank > currentRank
}

func (s *service) invalidateOptionsCache(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, GetStaffOptionsKey(companyID)).Err(); err != nil {
		s.logger.Warn("invalidate staff options cache failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
	}
}

func mapToResponse(row Staff) StaffResponse {
	resp := StaffResponse{
		ID:               row.ID.String(),
		CompanyID:        row.CompanyID.String(),
		FullName:         row.FullName,
		Email:            row.Email,
		StaffNumber:      row.StaffNumber,
		Phone:            row.Phone,
		EmploymentStatus: row.EmploymentStatus,
	}
	if row.StartDate != nil {
		v := row.StartDate.Format("2006-01-02")
		resp.StartDate = &v
	}
	return resp
}

func mapToListResponse(rows []Staff) []StaffResponse {
	resp := make([]StaffResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp
}
