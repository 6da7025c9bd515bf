package app

import (
	"os"

	"school-admin/internal/benefitconfig"
	"school-admin/internal/employee"
	"school-admin/internal/liquidation"
	"school-admin/internal/messaging/kafka"
	"school-admin/internal/payroll"
	"school-admin/internal/payrollconfig"
	"school-admin/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, migrates the schema and wires
// every module onto the router.
func BuildApp(router *gin.Engine) error {
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
	zap.L().Info("database connection established")

	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&payrollconfig.PayrollConfiguration{},
		&benefitconfig.BenefitConfiguration{},
		&payroll.PayrollRun{},
		&payroll.EmployeePayment{},
		&payroll.PayrollDeductionLine{},
		&payroll.PayrollBonusLine{},
		&liquidation.Liquidation{},
		&kafka.OutboxEvent{},
	); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		// Idempotency caching is optional; the API still serves
		// without it.
		zap.L().Warn("redis unavailable, idempotency replay disabled", zap.Error(err))
		redisClient = nil
	} else {
		zap.L().Info("redis connection established")
	}

	return registerModules(router, gormDB, redisClient)
}
