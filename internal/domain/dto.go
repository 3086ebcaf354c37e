package domain

import "time"

// CartLineInput is one client-submitted cart line. Clients also send display
// fields (name, price, image_url); those are deliberately not decoded here,
// prices always come from the catalog.
type CartLineInput struct {
	CatalogItemID int64 `json:"id"`
	Quantity      int   `json:"quantity"`
}

type CreateOrderRequest struct {
	Cart []CartLineInput `json:"cart"`
}

type CreateOrderResponse struct {
	OrderID int64 `json:"orderId"`
}

type CatalogItemResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	ImageRef  string  `json:"imageRef"`
}

type OrderResponse struct {
	OrderID    int64     `json:"orderId"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

type OrderItemResponse struct {
	Name                string  `json:"name"`
	Quantity            int     `json:"quantity"`
	UnitPriceAtPurchase float64 `json:"unitPriceAtPurchase"`
}

type OrderDetailsResponse struct {
	Order OrderResponse       `json:"order"`
	Items []OrderItemResponse `json:"items"`
}

func NewCatalogItemResponse(it CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		UnitPrice: it.UnitPrice.InexactFloat64(),
		ImageRef:  it.ImageURL,
	}
}

func NewOrderDetailsResponse(d OrderDetails) OrderDetailsResponse {
	items := make([]OrderItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, OrderItemResponse{
			Name:                it.Name,
			Quantity:            it.Quantity,
			UnitPriceAtPurchase: it.UnitPrice.InexactFloat64(),
		})
	}
	return OrderDetailsResponse{
		Order: OrderResponse{
			OrderID:    d.Order.ID,
			Status:     string(d.Order.Status),
			TotalPrice: d.Order.TotalPrice.InexactFloat64(),
			CreatedAt:  d.Order.CreatedAt,
		},
		Items: items,
	}
}
