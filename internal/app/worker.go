package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"staffhub/internal/company"
	"staffhub/internal/messaging/kafka"
	"staffhub/internal/messaging/kafka/producer"
	"staffhub/internal/review"
	"staffhub/internal/shared/connection"
	"staffhub/internal/staff"

	"go.uber.org/zap"
)

// RunWorker drives the two background loops: the transactional outbox
// relay and the recurring review auto-creation sweep.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	reviewService := review.NewService(
		sqlDB,
		review.NewRepository(gormDB),
		staff.NewRepository(gormDB),
		company.NewRepository(gormDB),
		outboxRepo,
		redisClient,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	go runReviewSweep(ctx, reviewService, reviewSweepInterval(), logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

func reviewSweepInterval() time.Duration {
	if raw := os.Getenv("REVIEW_SWEEP_INTERVAL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return 24 * time.Hour
}

// runReviewSweep invokes the auto-creation batch across all tenants on a
// fixed cadence; the batch itself is idempotent so overlap with an
// on-demand admin run is harmless.
func runReviewSweep(ctx context.Context, svc review.Service, interval time.Duration, logger *zap.Logger) {
	log := logger.Named("review.sweep")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("review sweep started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			log.Info("review sweep stopped")
			return
		case <-ticker.C:
			result, err := svc.RunAutoCreation(ctx, "")
			if err != nil {
				log.Error("review sweep failed", zap.Error(err))
				continue
			}
			log.Info("review sweep finished",
				zap.Int("created", result.Created),
				zap.Int("skipped", result.Skipped),
			)
		}
	}
}
