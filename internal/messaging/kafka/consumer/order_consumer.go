package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-rms/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	kitchenFeedKey = "kitchen:feed"
	kitchenFeedMax = 200
	kitchenFeedTTL = 24 * time.Hour
)

// ConsumeOrderLifecycle feeds placed orders into the kitchen display
// queue in Redis. The feed is a capped list; the display polls it.
func ConsumeOrderLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.order_lifecycle")
	log.Info("order lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("order lifecycle consumer stopped")
				return
			}
			log.Error("fetch order lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.OrderPlacedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode order_placed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := pushKitchenTicket(ctx, rdb, msg.Value); err != nil {
			log.Error("push kitchen ticket failed",
				zap.String("order_id", event.OrderID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit order lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("kitchen ticket queued",
			zap.String("order_id", event.OrderID),
			zap.String("order_number", event.OrderNumber),
		)
	}
}

func pushKitchenTicket(ctx context.Context, rdb *redis.Client, payload []byte) error {
	pipe := rdb.TxPipeline()
	pipe.LPush(ctx, kitchenFeedKey, payload)
	pipe.LTrim(ctx, kitchenFeedKey, 0, kitchenFeedMax-1)
	pipe.Expire(ctx, kitchenFeedKey, kitchenFeedTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("kitchen feed push: %w", err)
	}
	return nil
}
