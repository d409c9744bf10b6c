package main

import (
	"fmt"
	"os"

	"go-rms/internal/app"
	"go-rms/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The consumer binary tails order lifecycle events for the kitchen display.
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

	return app.RunConsumer()
}
