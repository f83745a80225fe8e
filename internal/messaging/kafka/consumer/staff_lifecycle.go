package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"staffhub/internal/events"
	"staffhub/internal/onboarding"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeStaffLifecycle initializes the onboarding record for newly
// provisioned staff so the staff member sees their checklist immediately.
func ConsumeStaffLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	onboardingService onboarding.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.staff_lifecycle")
	log.Info("staff lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("staff lifecycle consumer stopped")
				return
			}
			log.Error("fetch staff lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.StaffCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode staff_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := onboardingService.EnsureRecord(ctx, event.CompanyID, event.StaffID); err != nil {
			if isUniqueOnboardingViolation(err) {
				log.Warn("onboarding record already exists for event, skipping",
					zap.String("staff_id", event.StaffID),
					zap.String("company_id", event.CompanyID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("initialize onboarding record failed",
				zap.String("staff_id", event.StaffID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit staff lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("onboarding record initialized from staff_created event",
			zap.String("staff_id", event.StaffID),
			zap.String("company_id", event.CompanyID),
		)
	}
}

func isUniqueOnboardingViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_onboarding_staff"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_onboarding_staff")
}
