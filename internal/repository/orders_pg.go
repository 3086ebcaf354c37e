package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campus-cafe/internal/domain"
)

type OrderRepositoryInterface interface {
	CreateOrder(ctx context.Context, order domain.Order, lines []domain.OrderLine) (int64, error)
	GetOrder(ctx context.Context, orderID int64) (domain.OrderDetails, error)
}

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

// CreateOrder writes the header and every line in one transaction: after it
// returns, either all rows exist or none do.
func (or *OrderRepository) CreateOrder(ctx context.Context, order domain.Order, lines []domain.OrderLine) (_ int64, err error) {
	tx, err := or.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var orderID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (status, total_price, created_at)
		VALUES ($1, $2, NOW())
		RETURNING order_id
	`, string(order.Status), order.TotalPrice).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, line := range lines {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_lines (order_id, catalog_item_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
		`, orderID, line.CatalogItemID, line.Quantity, line.UnitPrice)
		if err != nil {
			return 0, fmt.Errorf("failed to insert order line for item %d: %w", line.CatalogItemID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return orderID, nil
}

// GetOrder loads the header and its lines. Line names come from a LEFT JOIN
// against the catalog: a since-deleted item yields an empty name while the
// snapshot price and quantity are still served.
func (or *OrderRepository) GetOrder(ctx context.Context, orderID int64) (domain.OrderDetails, error) {
	var order domain.Order
	var status string
	err := or.db.QueryRowContext(ctx, `
		SELECT order_id, status, total_price, created_at
		FROM orders WHERE order_id = $1
	`, orderID).Scan(&order.ID, &status, &order.TotalPrice, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.OrderDetails{}, domain.ErrOrderNotFound
	}
	if err != nil {
		return domain.OrderDetails{}, fmt.Errorf("failed to get order: %w", err)
	}
	order.Status = domain.OrderStatus(status)

	rows, err := or.db.QueryContext(ctx, `
		SELECT COALESCE(ci.name, ''), ol.quantity, ol.unit_price
		FROM order_lines ol
		LEFT JOIN catalog_items ci ON ol.catalog_item_id = ci.item_id
		WHERE ol.order_id = $1
		ORDER BY ol.line_id
	`, orderID)
	if err != nil {
		return domain.OrderDetails{}, fmt.Errorf("failed to get order lines: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderLineDetail
	for rows.Next() {
		var it domain.OrderLineDetail
		if err := rows.Scan(&it.Name, &it.Quantity, &it.UnitPrice); err != nil {
			return domain.OrderDetails{}, fmt.Errorf("failed to scan order line: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return domain.OrderDetails{}, err
	}

	return domain.OrderDetails{Order: order, Items: items}, nil
}
