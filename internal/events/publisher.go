package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campus-cafe/internal/connections/rabbitmq"

	"github.com/google/uuid"
)

// OrderCreated is published after an order transaction commits.
type OrderCreated struct {
	OrderID    int64              `json:"order_id"`
	Status     string             `json:"status"`
	TotalPrice float64            `json:"total_price"`
	Lines      []OrderCreatedLine `json:"lines"`
	CreatedAt  time.Time          `json:"created_at"`
}

type OrderCreatedLine struct {
	CatalogItemID int64   `json:"catalog_item_id"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
}

type PublisherInterface interface {
	OrderCreated(ctx context.Context, ev OrderCreated) error
}

type Publisher struct {
	client *rabbitmq.Client
}

func NewPublisher(client *rabbitmq.Client) PublisherInterface {
	return &Publisher{client: client}
}

func (p *Publisher) OrderCreated(ctx context.Context, ev OrderCreated) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := p.client.Publish(ctx, rabbitmq.OrdersExchange, rabbitmq.CreatedKey, uuid.NewString(), body); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	return nil
}
