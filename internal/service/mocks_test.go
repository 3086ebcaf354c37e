package service

import (
	"context"
	"time"

	"campus-cafe/internal/domain"
	"campus-cafe/internal/events"

	"github.com/shopspring/decimal"
)

// mockCatalogRepo implements repository.CatalogRepositoryInterface over an
// in-memory item map, so tests can change catalog prices between calls.
type mockCatalogRepo struct {
	items      map[int64]domain.CatalogItem
	resolveErr error
}

func newMockCatalog(items ...domain.CatalogItem) *mockCatalogRepo {
	m := &mockCatalogRepo{items: make(map[int64]domain.CatalogItem)}
	for _, it := range items {
		m.items[it.ID] = it
	}
	return m
}

func (m *mockCatalogRepo) ListItems(_ context.Context) ([]domain.CatalogItem, error) {
	var out []domain.CatalogItem
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockCatalogRepo) ResolvePrices(_ context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	prices := make(map[int64]decimal.Decimal)
	for _, id := range ids {
		if it, ok := m.items[id]; ok {
			prices[id] = it.UnitPrice
		}
	}
	return prices, nil
}

func (m *mockCatalogRepo) SeedDefaults(_ context.Context) error { return nil }

func (m *mockCatalogRepo) setPrice(id int64, price decimal.Decimal) {
	it := m.items[id]
	it.UnitPrice = price
	m.items[id] = it
}

// mockOrderRepo implements repository.OrderRepositoryInterface, storing
// committed orders in memory. GetOrder joins names from the catalog mock the
// same way the real repository LEFT JOINs, while prices come only from the
// stored lines.
type mockOrderRepo struct {
	catalog *mockCatalogRepo

	nextID    int64
	orders    map[int64]domain.Order
	lines     map[int64][]domain.OrderLine
	createErr error
}

func newMockOrders(catalog *mockCatalogRepo) *mockOrderRepo {
	return &mockOrderRepo{
		catalog: catalog,
		orders:  make(map[int64]domain.Order),
		lines:   make(map[int64][]domain.OrderLine),
	}
}

func (m *mockOrderRepo) CreateOrder(_ context.Context, order domain.Order, lines []domain.OrderLine) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.nextID++
	order.ID = m.nextID
	order.CreatedAt = time.Now().UTC()
	m.orders[order.ID] = order

	stored := make([]domain.OrderLine, len(lines))
	copy(stored, lines)
	for i := range stored {
		stored[i].OrderID = order.ID
	}
	m.lines[order.ID] = stored
	return order.ID, nil
}

func (m *mockOrderRepo) GetOrder(_ context.Context, orderID int64) (domain.OrderDetails, error) {
	order, ok := m.orders[orderID]
	if !ok {
		return domain.OrderDetails{}, domain.ErrOrderNotFound
	}
	var items []domain.OrderLineDetail
	for _, l := range m.lines[orderID] {
		name := ""
		if it, found := m.catalog.items[l.CatalogItemID]; found {
			name = it.Name
		}
		items = append(items, domain.OrderLineDetail{
			Name:      name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return domain.OrderDetails{Order: order, Items: items}, nil
}

// mockPublisher records published order events.
type mockPublisher struct {
	published []events.OrderCreated
	err       error
}

func (m *mockPublisher) OrderCreated(_ context.Context, ev events.OrderCreated) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, ev)
	return nil
}
