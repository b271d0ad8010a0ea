package app

import (
	"database/sql"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/allowance"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/bonus"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/ledger"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/messaging/kafka"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/middleware"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/penalty"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/shift"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/staff"
	"github.com/trungnguyen160923/coffee-management-sub002/internal/template"

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
	templateRepo := template.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	bonusRepo := bonus.NewRepository(gormDB)
	penaltyRepo := penalty.NewRepository(gormDB)
	allowanceRepo := allowance.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	templateService := template.NewService(db, templateRepo)
	staffService := staff.NewService(db, staffRepo)
	shiftService := shift.NewService(shiftRepo)
	bonusService := bonus.NewServiceWithOutbox(db, bonusRepo, templateService, outboxRepo)
	penaltyService := penalty.NewServiceWithOutbox(db, penaltyRepo, templateService, outboxRepo)
	allowanceService := allowance.NewService(db, allowanceRepo, templateService)

	// --- Ledger core ---
	store := ledger.NewStore(bonusService, penaltyService, allowanceService, staffService, shiftService)
	workflow := ledger.NewWorkflow(store, bonusService, penaltyService)
	coordinator := ledger.NewCoordinator(store, workflow, bonusService, penaltyService, allowanceService)
	applier := ledger.NewTemplateApplier(store, templateService, bonusService, penaltyService, allowanceService, outboxRepo)

	// --- Handlers ---
	templateHandler := template.NewHandler(templateService)
	staffHandler := staff.NewHandler(staffService)
	bonusHandler := bonus.NewHandler(bonusService)
	penaltyHandler := penalty.NewHandler(penaltyService)
	allowanceHandler := allowance.NewHandler(allowanceService)
	ledgerHandler := ledger.NewHandler(store, workflow, coordinator, applier)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		template.RegisterRoutes(api, templateHandler)
		staff.RegisterRoutes(api, staffHandler)
		bonus.RegisterRoutes(api, bonusHandler)
		penalty.RegisterRoutes(api, penaltyHandler)
		allowance.RegisterRoutes(api, allowanceHandler)
		ledger.RegisterRoutes(api, ledgerHandler, middleware.Idempotency(rdb))
	}

	return nil
}
