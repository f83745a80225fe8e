package app

import (
	"database/sql"
	"path/filepath"

	"staffhub/internal/auth"
	"staffhub/internal/company"
	"staffhub/internal/department"
	"staffhub/internal/messaging/kafka"
	"staffhub/internal/onboarding"
	"staffhub/internal/rbac"
	"staffhub/internal/rbac/infra"
	"staffhub/internal/review"
	"staffhub/internal/shared/counter"
	"staffhub/internal/staff"
	"staffhub/internal/ticket"
	"staffhub/internal/timetracking"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	onboardingRepo := onboarding.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	reviewRepo := review.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	ticketRepo := ticket.NewRepository(gormDB)
	timeEntryRepo := timetracking.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo, rbacService, staffRepo)
	companyService := company.NewService(companyRepo)
	departmentService := department.NewService(db, departmentRepo)
	onboardingService := onboarding.NewService(onboardingRepo, staffRepo)
	reviewService := review.NewService(db, reviewRepo, staffRepo, companyRepo, outboxRepo, rdb)
	staffService := staff.NewServiceWithOutbox(db, staffRepo, counterRepo, outboxRepo, rdb)
	ticketService := ticket.NewService(db, ticketRepo, departmentRepo, counterRepo)
	timeEntryService := timetracking.NewService(db, timeEntryRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	companyHandler := company.NewHandler(companyService)
	departmentHandler := department.NewHandler(departmentService)
	onboardingHandler := onboarding.NewHandler(onboardingService)
	rbacHandler := rbac.NewHandler(rbacService, rbacRepo)
	reviewHandler := review.NewHandler(reviewService, rdb)
	staffHandler := staff.NewHandler(staffService)
	ticketHandler := ticket.NewHandler(ticketService, rdb)
	timeEntryHandler := timetracking.NewHandler(timeEntryService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		company.RegisterRoutes(api, companyHandler, rbacService)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		onboarding.RegisterRoutes(api, onboardingHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
		review.RegisterRoutes(api, reviewHandler, rbacService, rdb)
		staff.RegisterRoutes(api, staffHandler, rbacService)
		ticket.RegisterRoutes(api, ticketHandler, rbacService, rdb)
		timetracking.RegisterRoutes(api, timeEntryHandler)
	}

	return nil
}
