package events

import "time"

const OrderPlacedTopic = "rms.order.lifecycle.v1"

type OrderPlacedEvent struct {
	EventType   string    `json:"event_type"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	TableID     *string   `json:"table_id,omitempty"`
	TotalCents  int64     `json:"total_cents"`
	OccurredAt  time.Time `json:"occurred_at"`
}
