package service

import (
	"context"
	"fmt"

	"campus-cafe/internal/domain"
	"campus-cafe/internal/events"
	"campus-cafe/internal/logger"
	"campus-cafe/internal/repository"

	"github.com/shopspring/decimal"
)

// PlaceOrderResult reports what happened to each submitted line: the order
// was created from the accepted lines, Rejected lists the catalog ids of
// lines excluded during price resolution (unknown id or quantity below 1).
type PlaceOrderResult struct {
	OrderID  int64
	Rejected []int64
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req domain.CreateOrderRequest) (PlaceOrderResult, error)
	GetOrder(ctx context.Context, orderID int64) (domain.OrderDetails, error)
}

type OrderService struct {
	catalog   repository.CatalogRepositoryInterface
	orders    repository.OrderRepositoryInterface
	publisher events.PublisherInterface
	lg        *logger.Logger
}

func NewOrderService(
	catalog repository.CatalogRepositoryInterface,
	orders repository.OrderRepositoryInterface,
	publisher events.PublisherInterface,
	lg *logger.Logger,
) OrderServiceInterface {
	return &OrderService{catalog: catalog, orders: orders, publisher: publisher, lg: lg}
}

// PlaceOrder turns a client cart into a durable order. Unit prices come from
// the catalog only; any price the client claims is never read. Lines that do
// not resolve are excluded and reported back, they never fail the whole
// request. An order with zero surviving lines is never created.
func (s *OrderService) PlaceOrder(ctx context.Context, req domain.CreateOrderRequest) (PlaceOrderResult, error) {
	if len(req.Cart) == 0 {
		return PlaceOrderResult{}, domain.ErrEmptyCart
	}

	ids := make([]int64, 0, len(req.Cart))
	seen := make(map[int64]bool, len(req.Cart))
	for _, line := range req.Cart {
		if !seen[line.CatalogItemID] {
			seen[line.CatalogItemID] = true
			ids = append(ids, line.CatalogItemID)
		}
	}

	prices, err := s.catalog.ResolvePrices(ctx, ids)
	if err != nil {
		return PlaceOrderResult{}, fmt.Errorf("failed to resolve prices: %w", err)
	}

	var (
		lines    []domain.OrderLine
		rejected []int64
		total    = decimal.Zero
	)
	for _, line := range req.Cart {
		price, ok := prices[line.CatalogItemID]
		if !ok || line.Quantity < 1 {
			rejected = append(rejected, line.CatalogItemID)
			continue
		}
		lines = append(lines, domain.OrderLine{
			CatalogItemID: line.CatalogItemID,
			Quantity:      line.Quantity,
			UnitPrice:     price,
		})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	// Every line rejected is indistinguishable from an empty cart.
	if len(lines) == 0 {
		return PlaceOrderResult{Rejected: rejected}, domain.ErrEmptyCart
	}

	order := domain.Order{Status: domain.StatusPending, TotalPrice: total}
	orderID, err := s.orders.CreateOrder(ctx, order, lines)
	if err != nil {
		return PlaceOrderResult{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.publishCreated(ctx, orderID, total, lines)

	return PlaceOrderResult{OrderID: orderID, Rejected: rejected}, nil
}

// publishCreated emits the order feed event. The order is already committed,
// so a broker failure is logged and the request still succeeds.
func (s *OrderService) publishCreated(ctx context.Context, orderID int64, total decimal.Decimal, lines []domain.OrderLine) {
	if s.publisher == nil {
		return
	}

	ev := events.OrderCreated{
		OrderID:    orderID,
		Status:     string(domain.StatusPending),
		TotalPrice: total.InexactFloat64(),
	}
	for _, l := range lines {
		ev.Lines = append(ev.Lines, events.OrderCreatedLine{
			CatalogItemID: l.CatalogItemID,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice.InexactFloat64(),
		})
	}

	if err := s.publisher.OrderCreated(ctx, ev); err != nil {
		s.lg.Error("order_event_publish_failed", err, map[string]any{"order_id": orderID})
	}
}

func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (domain.OrderDetails, error) {
	return s.orders.GetOrder(ctx, orderID)
}
