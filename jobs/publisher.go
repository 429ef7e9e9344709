package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"marketplace_bot/dialog"
)

// OrderQueueKey is the Redis list completed orders are pushed onto for the
// human payment-verification workflow.
const OrderQueueKey = "queue:orders"

var _ dialog.OrderSink = (*Publisher)(nil)

// Publisher pushes submitted orders onto the Redis order queue. It
// implements dialog.OrderSink.
type Publisher struct {
	rdb *redis.Client
}

// NewPublisher creates a Publisher over a Redis client.
func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// SubmitOrder serializes the order and enqueues it.
func (p *Publisher) SubmitOrder(ctx context.Context, order dialog.Order) error {
	payload, err := encodeOrder(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	if err := p.rdb.LPush(ctx, OrderQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("enqueue order: %w", err)
	}

	fmt.Println("📨 Order queued for verification:", order.Ref)
	return nil
}

func encodeOrder(order dialog.Order) ([]byte, error) {
	return json.Marshal(order)
}

func decodeOrder(payload []byte) (dialog.Order, error) {
	var order dialog.Order
	err := json.Unmarshal(payload, &order)
	return order, err
}
