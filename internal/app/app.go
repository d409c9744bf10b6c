package app

import (
	"os"
	"strconv"
	"time"

	"go-rms/internal/middleware"
	"go-rms/internal/ordering"
	"go-rms/internal/shared/connection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

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

	if err := migrate(gormDB); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(cors.New(corsConfig()))

	return registerModules(router, db, gormDB, redisClient)
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = []string{origins}
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AllowCredentials = !cfg.AllowAllOrigins
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "Idempotency-Key", "X-Request-ID")
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

// ratesFromEnv lets deployments override the statutory order rates
// without a rebuild.
func ratesFromEnv() ordering.RateConfig {
	rates := ordering.DefaultRates()
	if v, err := strconv.ParseFloat(os.Getenv("ORDER_TAX_RATE"), 64); err == nil && v >= 0 {
		rates.TaxRate = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("ORDER_SERVICE_CHARGE_RATE"), 64); err == nil && v >= 0 {
		rates.ServiceChargeRate = v
	}
	return rates
}
