package main

import (
	"fmt"
	"os"
	"time"

	"go-rms/internal/app"
	"go-rms/internal/bootstrap"
	"go-rms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	apperror.Init()

	router := gin.Default()
	if err := app.BuildApp(router); err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	return bootstrap.StartHTTPServer(router, bootstrap.ServerConfig{
		Port:         port,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, bootstrap.NewStdoutAuditLogger())
}
