package jobs

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// StartWorker consumes the order queue in the background and surfaces each
// order to the operators' log until a human confirms the payment. It stops
// when the context is cancelled.
func StartWorker(ctx context.Context, rdb *redis.Client) {
	go func() {
		for {
			res, err := rdb.BRPop(ctx, 10*time.Second, OrderQueueKey).Result()
			if err == redis.Nil {
				continue // queue empty, keep waiting
			}
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("❌ Order queue read failed: %v", err)
				time.Sleep(time.Second)
				continue
			}

			// BRPop returns [key, value].
			if len(res) < 2 {
				continue
			}
			order, err := decodeOrder([]byte(res[1]))
			if err != nil {
				log.Printf("❌ Bad order payload on %s: %v", OrderQueueKey, err)
				continue
			}

			log.Printf("🛠 Awaiting payment verification: order %s, %s via %s, proof %s",
				order.Ref, order.UserID, order.PaymentMethod, order.ProofMediaURL)
		}
	}()
}
