package notifier

import (
	"context"
	"encoding/json"

	"campus-cafe/internal/connections/rabbitmq"
	"campus-cafe/internal/events"
	"campus-cafe/internal/logger"
)

// Run consumes the order feed and logs every placed order until ctx is
// canceled. It is the counter-side companion of the API's publisher.
func Run(ctx context.Context, client *rabbitmq.Client, lg *logger.Logger) error {
	deliveries, err := client.Consume(rabbitmq.OrdersQueue, "order-notifier", 1)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			var ev events.OrderCreated
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				lg.Error("bad_order_event", err, map[string]any{"message_id": d.MessageId})
				_ = d.Nack(false, false)
				continue
			}
			lg.Info("order_placed", map[string]any{
				"order_id":    ev.OrderID,
				"total_price": ev.TotalPrice,
				"lines":       len(ev.Lines),
			})
			_ = d.Ack(false)
		}
	}
}
