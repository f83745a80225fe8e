package review

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"staffhub/internal/company"
	"staffhub/internal/events"
	"staffhub/internal/messaging/kafka"
	reviewerrors "staffhub/internal/review/errors"
	"staffhub/internal/shared/contextutil"
	"staffhub/internal/staff"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	autoCreateGuardPrefix = "review:autocreate:"
	autoCreateGuardTTL    = 24 * time.Hour
)

const (
	skipReasonNoStartDate = "missing start date"
	skipReasonNoContact   = "no client contact for company"
	skipReasonDuplicate   = "review already exists"
	skipReasonInFlight    = "creation already in flight"
)

type Service interface {
	GetNextMilestone(ctx context.Context, companyID, staffID string) (NextMilestoneResponse, error)
	GetFullSchedule(ctx context.Context, companyID, staffID string) (ScheduleResponse, error)
	GetAll(ctx context.Context, companyID string) ([]ReviewResponse, error)
	GetByStaff(ctx context.Context, companyID, staffID string) ([]ReviewResponse, error)
	Submit(ctx context.Context, companyID, reviewID string) (ReviewResponse, error)
	StartReview(ctx context.Context, companyID, reviewID string) (ReviewResponse, error)
	// RunAutoCreation materializes at most one due review per staff member.
	// companyID may be empty to scan every tenant (worker invocation).
	RunAutoCreation(ctx context.Context, companyID string) (AutoCreationResult, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	staffRepo   staff.Repository
	companyRepo company.Repository
	outbox      kafka.OutboxRepository
	rdb         *redis.Client
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	staffRepo staff.Repository,
	companyRepo company.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("review.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("review.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		staffRepo:   staffRepo,
		companyRepo: companyRepo,
		outbox:      outboxRepo,
		rdb:         rdb,
		logger:      l,
		now:         time.Now,
	}
}

func (s *service) GetNextMilestone(ctx context.Context, companyID, staffID string) (NextMilestoneResponse, error) {
	member, err := s.loadSchedulableMember(ctx, companyID, staffID)
	if err != nil {
		return NextMilestoneResponse{}, err
	}

	existing, err := s.repo.FindAllByStaff(ctx, staffID)
	if err != nil {
		return NextMilestoneResponse{}, err
	}

	milestone := ResolveNextMilestone(*member.StartDate, existing, s.now())
	return NextMilestoneResponse{StaffID: staffID, Milestone: milestone}, nil
}

func (s *service) GetFullSchedule(ctx context.Context, companyID, staffID string) (ScheduleResponse, error) {
	member, err := s.loadSchedulableMember(ctx, companyID, staffID)
	if err != nil {
		return ScheduleResponse{}, err
	}

	return ScheduleResponse{
		StaffID:  staffID,
		Schedule: FullSchedule(*member.StartDate, s.now()),
	}, nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]ReviewResponse, error) {
	rows, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]ReviewResponse, 0, len(rows))
	for _, rec := range rows {
		resp = append(resp, mapReviewResponse(rec))
	}
	return resp, nil
}

func (s *service) GetByStaff(ctx context.Context, companyID, staffID string) ([]ReviewResponse, error) {
	if _, err := s.staffRepo.FindByIDAndCompany(ctx, companyID, staffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reviewerrors.ErrInvalidStaffID
		}
		return nil, err
	}
	rows, err := s.repo.FindAllByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	resp := make([]ReviewResponse, 0, len(rows))
	for _, rec := range rows {
		resp = append(resp, mapReviewResponse(rec))
	}
	return resp, nil
}

func (s *service) Submit(ctx context.Context, companyID, reviewID string) (ReviewResponse, error) {
	rec, err := s.repo.FindByIDAndCompany(ctx, companyID, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReviewResponse{}, reviewerrors.ErrReviewNotFound
		}
		return ReviewResponse{}, err
	}

	switch rec.Status {
	case StatusPending:
	case StatusSubmitted:
		return ReviewResponse{}, reviewerrors.ErrReviewAlreadySubmitted
	default:
		return ReviewResponse{}, reviewerrors.ErrReviewTerminal
	}

	submittedAt := s.now().UTC()
	rec.Status = StatusSubmitted
	rec.SubmittedDate = &submittedAt
	if err := s.repo.Update(ctx, rec); err != nil {
		return ReviewResponse{}, err
	}

	s.logger.Info("review submitted",
		zap.String("review_id", rec.ID.String()),
		zap.String("staff_id", rec.StaffID.String()),
	)
	return mapReviewResponse(*rec), nil
}

func (s *service) StartReview(ctx context.Context, companyID, reviewID string) (ReviewResponse, error) {
	rec, err := s.repo.FindByIDAndCompany(ctx, companyID, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReviewResponse{}, reviewerrors.ErrReviewNotFound
		}
		return ReviewResponse{}, err
	}

	switch rec.Status {
	case StatusSubmitted:
	case StatusPending:
		return ReviewResponse{}, reviewerrors.ErrReviewNotSubmitted
	default:
		return ReviewResponse{}, reviewerrors.ErrReviewTerminal
	}

	rec.Status = StatusUnderReview
	if err := s.repo.Update(ctx, rec); err != nil {
		return ReviewResponse{}, err
	}

	s.logger.Info("review moved under review",
		zap.String("review_id", rec.ID.String()),
		zap.String("staff_id", rec.StaffID.String()),
	)
	return mapReviewResponse(*rec), nil
}

// RunAutoCreation walks every schedulable staff member, finds the first
// milestone type inside its creation window, and inserts a PENDING review
// for it. Business-rule failures (no start date, no client contact, an
// already existing review, a concurrent duplicate) are tallied as skips;
// database errors abort the whole batch so the caller can re-run it.
func (s *service) RunAutoCreation(ctx context.Context, companyID string) (AutoCreationResult, error) {
	rid := contextutil.GetRequestID(ctx)
	now := s.now()

	members, err := s.staffRepo.FindAllForScheduling(ctx, companyID)
	if err != nil {
		return AutoCreationResult{}, err
	}

	result := AutoCreationResult{Details: make([]AutoCreationDetail, 0, len(members))}
	for i := range members {
		member := &members[i]

		if member.StartDate == nil {
			result.skip(member.ID.String(), "", skipReasonNoStartDate)
			continue
		}

		existing, err := s.repo.FindAllByStaff(ctx, member.ID.String())
		if err != nil {
			return AutoCreationResult{}, err
		}

		milestoneType, dueDate, found := nextCreatable(*member.StartDate, existing, now)
		if !found {
			continue
		}
		if recordExists(existing, milestoneType, dueDate) {
			result.skip(member.ID.String(), milestoneType, skipReasonDuplicate)
			continue
		}

		outcome, err := s.createReview(ctx, rid, member, milestoneType, dueDate, now)
		if err != nil {
			return AutoCreationResult{}, err
		}
		if outcome.Outcome == OutcomeCreated {
			result.Created++
		} else {
			result.Skipped++
		}
		result.Details = append(result.Details, outcome)
	}

	s.logger.Info("review auto-creation finished",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// nextCreatable re-derives each type's due date independently of the
// resolver's gating and returns the first one whose creation window
// contains now. The windows never overlap, so at most one type matches
// per run; the caller tallies a skip when that slot is already filled.
func nextCreatable(startDate time.Time, existing []ReviewRecord, now time.Time) (string, time.Time, bool) {
	for _, milestoneType := range MilestoneOrder {
		dueDate, ok := MilestoneDueDate(milestoneType, startDate, existing)
		if !ok {
			continue
		}
		if InCreationWindow(dueDate, now) {
			return milestoneType, dueDate, true
		}
	}
	return "", time.Time{}, false
}

// recordExists checks one per (staff, type) for the fixed milestones; a
// RECURRING review repeats, so only a record for the same cadence slot
// (same due date) counts as a duplicate.
func recordExists(existing []ReviewRecord, milestoneType string, dueDate time.Time) bool {
	for _, r := range existing {
		if r.Type != milestoneType {
			continue
		}
		if milestoneType != TypeRecurring {
			return true
		}
		if truncateToDay(r.DueDate).Equal(truncateToDay(dueDate)) {
			return true
		}
	}
	return false
}

func (s *service) createReview(
	ctx context.Context,
	rid string,
	member *staff.Staff,
	milestoneType string,
	dueDate time.Time,
	now time.Time,
) (AutoCreationDetail, error) {
	staffID := member.ID.String()

	// Same-day runs for the same staff and type collapse onto one writer.
	if s.rdb != nil {
		guardKey := fmt.Sprintf("%s%s:%s:%s", autoCreateGuardPrefix, staffID, milestoneType, truncateToDay(now).Format("2006-01-02"))
		acquired, err := s.rdb.SetNX(ctx, guardKey, "1", autoCreateGuardTTL).Result()
		if err == nil && !acquired {
			return skippedDetail(staffID, milestoneType, skipReasonInFlight), nil
		}
	}

	contact, err := s.companyRepo.FindPrimaryContact(ctx, member.CompanyID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("review auto-creation skipped staff",
				zap.String("staff_id", staffID),
				zap.String("reason", skipReasonNoContact),
			)
			return skippedDetail(staffID, milestoneType, skipReasonNoContact), nil
		}
		return AutoCreationDetail{}, err
	}

	rec := &ReviewRecord{
		ID:               uuid.New(),
		CompanyID:        member.CompanyID,
		StaffID:          member.ID,
		Type:             milestoneType,
		Status:           StatusPending,
		DueDate:          truncateToDay(dueDate),
		EvaluationPeriod: EvaluationPeriod(*member.StartDate, dueDate),
		ReviewerID:       &contact.ID,
		ReviewerName:     contact.FullName,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AutoCreationDetail{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, rec); err != nil {
		// A concurrent run already inserted this slot; the unique index
		// turns the race into an ordinary skip.
		if isUniqueReviewViolation(err) {
			return skippedDetail(staffID, milestoneType, skipReasonDuplicate), nil
		}
		return AutoCreationDetail{}, err
	}

	if s.outbox != nil {
		event := events.ReviewCreatedEvent{
			EventType:  "review.created",
			ReviewID:   rec.ID.String(),
			StaffID:    staffID,
			CompanyID:  member.CompanyID.String(),
			ReviewType: milestoneType,
			DueDate:    rec.DueDate,
			OccurredAt: now.UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return AutoCreationDetail{}, err
		}
		outboxEvent := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "review",
			AggregateID:   rec.ID.String(),
			EventType:     event.EventType,
			Topic:         events.ReviewCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			return AutoCreationDetail{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return AutoCreationDetail{}, err
	}

	s.logger.Info("review auto-created",
		zap.String("review_id", rec.ID.String()),
		zap.String("staff_id", staffID),
		zap.String("type", milestoneType),
		zap.Time("due_date", rec.DueDate),
	)
	return AutoCreationDetail{StaffID: staffID, Outcome: OutcomeCreated, ReviewType: milestoneType}, nil
}

// loadSchedulableMember rejects staff without a start date before any
// review rows are fetched; the returned member always has StartDate set.
func (s *service) loadSchedulableMember(ctx context.Context, companyID, staffID string) (*staff.Staff, error) {
	member, err := s.staffRepo.FindByIDAndCompany(ctx, companyID, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reviewerrors.ErrInvalidStaffID
		}
		return nil, err
	}
	if member.StartDate == nil {
		return nil, reviewerrors.ErrMissingStartDate
	}
	return member, nil
}

func isUniqueReviewViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_review_staff_type_due"
}

func skippedDetail(staffID, milestoneType, reason string) AutoCreationDetail {
	return AutoCreationDetail{
		StaffID:    staffID,
		Outcome:    OutcomeSkipped,
		ReviewType: milestoneType,
		Reason:     reason,
	}
}

func (r *AutoCreationResult) skip(staffID, milestoneType, reason string) {
	r.Skipped++
	r.Details = append(r.Details, skippedDetail(staffID, milestoneType, reason))
}

func mapReviewResponse(rec ReviewRecord) ReviewResponse {
	resp := ReviewResponse{
		ID:               rec.ID.String(),
		StaffID:          rec.StaffID.String(),
		CompanyID:        rec.CompanyID.String(),
		Type:             rec.Type,
		Status:           rec.Status,
		DueDate:          rec.DueDate.Format("2006-01-02"),
		SubmittedDate:    rec.SubmittedDate,
		EvaluationPeriod: rec.EvaluationPeriod,
		ReviewerName:     rec.ReviewerName,
	}
	if rec.ReviewerID != nil {
		id := rec.ReviewerID.String()
		resp.ReviewerID = &id
	}
	return resp
}
