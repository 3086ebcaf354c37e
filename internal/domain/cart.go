package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CartLine is one client-held cart entry. Name, UnitPrice and ImageURL are
// display snapshots for the client; the server re-prices from the catalog
// and ignores them.
type CartLine struct {
	CatalogItemID int64           `json:"id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	Quantity      int             `json:"quantity"`
}

// Cart is the client-local item buffer. It is a plain value threaded through
// calls, not shared state; persistence happens only through Save/LoadCart.
// At most one line exists per catalog item.
type Cart struct {
	lines []CartLine
}

// Add merges the item into the cart: an already-present item gets its
// quantity incremented, a new item is appended.
func (c *Cart) Add(item CatalogItem) {
	for i := range c.lines {
		if c.lines[i].CatalogItemID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		CatalogItemID: item.ID,
		Name:          item.Name,
		UnitPrice:     item.UnitPrice,
		ImageURL:      item.ImageURL,
		Quantity:      1,
	})
}

// SetQuantity applies delta to the item's quantity. A resulting quantity of
// zero or less removes the line. Unknown ids are ignored.
func (c *Cart) SetQuantity(catalogItemID int64, delta int) {
	for i := range c.lines {
		if c.lines[i].CatalogItemID != catalogItemID {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns the cart entries in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Size() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Save serializes the cart for the client's local store.
func (c *Cart) Save() ([]byte, error) {
	return json.Marshal(c.lines)
}

// LoadCart restores a cart previously written by Save.
func LoadCart(data []byte) (Cart, error) {
	var lines []CartLine
	if len(data) > 0 {
		if err := json.Unmarshal(data, &lines); err != nil {
			return Cart{}, err
		}
	}
	return Cart{lines: lines}, nil
}
