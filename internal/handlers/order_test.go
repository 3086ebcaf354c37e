package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campus-cafe/internal/domain"
	"campus-cafe/internal/logger"
	"campus-cafe/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOrderService implements service.OrderServiceInterface.
type mockOrderService struct {
	placeResult service.PlaceOrderResult
	placeErr    error
	details     domain.OrderDetails
	getErr      error

	gotRequest domain.CreateOrderRequest
}

func (m *mockOrderService) PlaceOrder(_ context.Context, req domain.CreateOrderRequest) (service.PlaceOrderResult, error) {
	m.gotRequest = req
	return m.placeResult, m.placeErr
}

func (m *mockOrderService) GetOrder(_ context.Context, _ int64) (domain.OrderDetails, error) {
	return m.details, m.getErr
}

// mockCatalogService implements service.CatalogServiceInterface.
type mockCatalogService struct {
	items []domain.CatalogItem
	err   error
}

func (m *mockCatalogService) ListCatalog(_ context.Context) ([]domain.CatalogItem, error) {
	return m.items, m.err
}

func newTestRouter(orders *mockOrderService, catalog *mockCatalogService) http.Handler {
	lg := logger.New("test")
	if catalog == nil {
		catalog = &mockCatalogService{}
	}
	h := &Handler{
		OrderHandler:   NewOrderHandler(orders, lg),
		CatalogHandler: NewCatalogHandler(catalog, lg),
	}
	return Router(h, lg)
}

func TestCreateOrderCreated(t *testing.T) {
	orders := &mockOrderService{placeResult: service.PlaceOrderResult{OrderID: 42}}
	router := newTestRouter(orders, nil)

	body := `{"cart":[{"id":1,"quantity":2},{"id":3,"quantity":1}]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"orderId":42}`, rec.Body.String())

	require.Len(t, orders.gotRequest.Cart, 2)
	assert.Equal(t, int64(1), orders.gotRequest.Cart[0].CatalogItemID)
	assert.Equal(t, 2, orders.gotRequest.Cart[0].Quantity)
}

func TestCreateOrderIgnoresClientPriceFields(t *testing.T) {
	orders := &mockOrderService{placeResult: service.PlaceOrderResult{OrderID: 7}}
	router := newTestRouter(orders, nil)

	// client sneaks in a price and a name; only id and quantity survive decoding
	body := `{"cart":[{"id":5,"quantity":1,"price":0.01,"name":"Free Pizza"}]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, orders.gotRequest.Cart, 1)
	assert.Equal(t, domain.CartLineInput{CatalogItemID: 5, Quantity: 1}, orders.gotRequest.Cart[0])
}

func TestCreateOrderEmptyCart(t *testing.T) {
	orders := &mockOrderService{placeErr: domain.ErrEmptyCart}
	router := newTestRouter(orders, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"cart":[]}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Cart is empty"}`, rec.Body.String())
}

func TestCreateOrderInvalidJSON(t *testing.T) {
	router := newTestRouter(&mockOrderService{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{not json`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON body"}`, rec.Body.String())
}

func TestCreateOrderPersistenceFailure(t *testing.T) {
	orders := &mockOrderService{placeErr: errors.New("pq: connection reset")}
	router := newTestRouter(orders, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders",
		strings.NewReader(`{"cart":[{"id":1,"quantity":1}]}`)))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestGetOrderOK(t *testing.T) {
	created := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	orders := &mockOrderService{
		details: domain.OrderDetails{
			Order: domain.Order{
				ID:         42,
				Status:     domain.StatusPending,
				TotalPrice: decimal.NewFromInt(100),
				CreatedAt:  created,
			},
			Items: []domain.OrderLineDetail{
				{Name: "Espresso", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
			},
		},
	}
	router := newTestRouter(orders, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.OrderDetailsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.Order.OrderID)
	assert.Equal(t, "Pending", resp.Order.Status)
	assert.Equal(t, 100.0, resp.Order.TotalPrice)
	assert.True(t, created.Equal(resp.Order.CreatedAt))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Espresso", resp.Items[0].Name)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 50.0, resp.Items[0].UnitPriceAtPurchase)
}

func TestGetOrderNotFound(t *testing.T) {
	orders := &mockOrderService{getErr: domain.ErrOrderNotFound}
	router := newTestRouter(orders, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/9999999", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Order not found"}`, rec.Body.String())
}

func TestGetOrderNonNumericID(t *testing.T) {
	router := newTestRouter(&mockOrderService{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/abc", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Order not found"}`, rec.Body.String())
}

func TestListCatalog(t *testing.T) {
	catalog := &mockCatalogService{items: []domain.CatalogItem{
		{ID: 1, Name: "Espresso", UnitPrice: decimal.NewFromInt(50), ImageURL: "/img/espresso.jpg"},
		{ID: 2, Name: "Samosa", UnitPrice: decimal.NewFromInt(20), ImageURL: "/img/samosa.jpg"},
	}}
	router := newTestRouter(&mockOrderService{}, catalog)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id":1,"name":"Espresso","unitPrice":50,"imageRef":"/img/espresso.jpg"},
		{"id":2,"name":"Samosa","unitPrice":20,"imageRef":"/img/samosa.jpg"}
	]`, rec.Body.String())
}

func TestListCatalogFailure(t *testing.T) {
	catalog := &mockCatalogService{err: errors.New("db down")}
	router := newTestRouter(&mockOrderService{}, catalog)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
