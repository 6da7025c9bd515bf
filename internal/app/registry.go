package app

import (
	"school-admin/internal/benefitconfig"
	"school-admin/internal/employee"
	"school-admin/internal/liquidation"
	"school-admin/internal/messaging/kafka"
	"school-admin/internal/middleware"
	"school-admin/internal/payroll"
	"school-admin/internal/payrollconfig"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	configRepo := payrollconfig.NewRepository(gormDB)
	benefitRepo := benefitconfig.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	liquidationRepo := liquidation.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(gormDB, employeeRepo)
	configService := payrollconfig.NewService(gormDB, configRepo)
	benefitService := benefitconfig.NewService(gormDB, benefitRepo)
	payrollService := payroll.NewServiceWithOutbox(
		gormDB, payrollRepo, configRepo, benefitRepo, employeeRepo, outboxRepo,
	)
	liquidationService := liquidation.NewServiceWithOutbox(
		gormDB, liquidationRepo, employeeRepo, outboxRepo,
	)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	configHandler := payrollconfig.NewHandler(configService)
	benefitHandler := benefitconfig.NewHandler(benefitService)
	payrollHandler := payroll.NewHandler(payrollService, rdb)
	liquidationHandler := liquidation.NewHandler(liquidationService)

	// --- Routes ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		payrollconfig.RegisterRoutes(api, configHandler)
		benefitconfig.RegisterRoutes(api, benefitHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
		liquidation.RegisterRoutes(api, liquidationHandler)
	}

	return nil
}
