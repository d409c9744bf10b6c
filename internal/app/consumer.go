package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-rms/internal/events"
	"go-rms/internal/messaging/kafka/consumer"
	"go-rms/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer feeds the kitchen display from order lifecycle events.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.OrderPlacedTopic,
		GroupID:        "go-rms-kitchen-display",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Blocks until the first signal cancels the context.
	consumer.ConsumeOrderLifecycle(ctx, reader, redisClient, logger)

	logger.Info("consumer stopped")
	return nil
}
