package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. Only StatusPending is
// produced today; further states (ready, cancelled) plug in here.
type OrderStatus string

const (
	StatusPending OrderStatus = "Pending"
)

func (s OrderStatus) Valid() bool {
	return s == StatusPending
}

// CatalogItem is a purchasable menu item. The catalog owns it; the order
// pipeline only ever reads it.
type CatalogItem struct {
	ID        int64
	Name      string
	UnitPrice decimal.Decimal
	ImageURL  string
}

type Order struct {
	ID         int64
	Status     OrderStatus
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

// OrderLine is one priced line of a committed order. UnitPrice is the
// catalog price snapshot taken at placement and is never recomputed.
type OrderLine struct {
	ID            int64
	OrderID       int64
	CatalogItemID int64
	Quantity      int
	UnitPrice     decimal.Decimal
}

// OrderLineDetail is an order line joined with the catalog item's display
// name. Name is empty when the catalog item has since been deleted; price
// and quantity still come from the snapshot.
type OrderLineDetail struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

type OrderDetails struct {
	Order Order
	Items []OrderLineDetail
}
