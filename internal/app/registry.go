package app

import (
	"database/sql"
	"os"

	"go-rms/internal/attendance"
	"go-rms/internal/auth"
	"go-rms/internal/catalog"
	"go-rms/internal/employee"
	"go-rms/internal/messaging/kafka"
	"go-rms/internal/ordering"
	"go-rms/internal/payroll"
	"go-rms/internal/rbac"
	"go-rms/internal/shared/counter"

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
	attendanceRepo := attendance.NewRepository(gormDB)
	catalogRepo := catalog.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	orderRepo := ordering.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo)
	authService := auth.NewService(employeeRepo)
	catalogService := catalog.NewService(db, catalogRepo, rdb, os.Getenv("MENU_BASE_URL"))
	employeeService := employee.NewService(db, employeeRepo)
	orderService := ordering.NewService(db, orderRepo, counterRepo, outboxRepo, ratesFromEnv())
	payrollService := payroll.NewService(db, payrollRepo, outboxRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	catalogHandler := catalog.NewHandler(catalogService)
	employeeHandler := employee.NewHandler(employeeService)
	orderHandler := ordering.NewHandler(orderService, rdb)
	payrollHandler := payroll.NewHandler(payrollService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		catalog.RegisterRoutes(api, catalogHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		ordering.RegisterRoutes(api, orderHandler, rbacService, rdb)
		payroll.RegisterRoutes(api, payrollHandler, rbacService)
	}

	return nil
}
