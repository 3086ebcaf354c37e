package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"campus-cafe/internal/domain"

	"github.com/shopspring/decimal"
)

type CatalogRepositoryInterface interface {
	ListItems(ctx context.Context) ([]domain.CatalogItem, error)
	ResolvePrices(ctx context.Context, itemIDs []int64) (map[int64]decimal.Decimal, error)
	SeedDefaults(ctx context.Context) error
}

type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) CatalogRepositoryInterface {
	return &CatalogRepository{db: db}
}

func (cr *CatalogRepository) ListItems(ctx context.Context) ([]domain.CatalogItem, error) {
	rows, err := cr.db.QueryContext(ctx, `
		SELECT item_id, name, unit_price, COALESCE(image_url, '')
		FROM catalog_items
		ORDER BY item_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}
	defer rows.Close()

	var items []domain.CatalogItem
	for rows.Next() {
		var it domain.CatalogItem
		if err := rows.Scan(&it.ID, &it.Name, &it.UnitPrice, &it.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ResolvePrices returns the current unit price for every requested id that
// exists in the catalog. Ids not present in the result did not resolve and
// must be treated by the caller as rejected, never as zero-priced.
func (cr *CatalogRepository) ResolvePrices(ctx context.Context, itemIDs []int64) (map[int64]decimal.Decimal, error) {
	prices := make(map[int64]decimal.Decimal, len(itemIDs))
	if len(itemIDs) == 0 {
		return prices, nil
	}

	placeholders := make([]string, len(itemIDs))
	args := make([]any, len(itemIDs))
	for i, id := range itemIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT item_id, unit_price FROM catalog_items WHERE item_id IN (%s)`,
		strings.Join(placeholders, ","))

	rows, err := cr.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve prices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var price decimal.Decimal
		if err := rows.Scan(&id, &price); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		prices[id] = price
	}
	return prices, rows.Err()
}

// SeedDefaults inserts the stock menu when the catalog is empty, so a fresh
// database serves something. Count check and inserts share one transaction.
func (cr *CatalogRepository) SeedDefaults(ctx context.Context) (err error) {
	tx, err := cr.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var count int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_items`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count catalog items: %w", err)
	}
	if count > 0 {
		return tx.Commit()
	}

	for _, it := range defaultMenu {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO catalog_items (name, unit_price, image_url)
			VALUES ($1, $2, $3)
		`, it.Name, it.UnitPrice, it.ImageURL)
		if err != nil {
			return fmt.Errorf("failed to seed item %s: %w", it.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

var defaultMenu = []domain.CatalogItem{
	{Name: "Espresso", UnitPrice: decimal.NewFromInt(50), ImageURL: "/img/espresso.jpg"},
	{Name: "Samosa", UnitPrice: decimal.NewFromInt(20), ImageURL: "/img/samosa.jpg"},
	{Name: "Veg Sandwich", UnitPrice: decimal.NewFromInt(70), ImageURL: "/img/veg-sandwich.jpg"},
	{Name: "Cold Coffee", UnitPrice: decimal.NewFromInt(80), ImageURL: "/img/cold-coffee.jpg"},
	{Name: "Margherita Pizza", UnitPrice: decimal.NewFromInt(150), ImageURL: "/img/margherita.jpg"},
	{Name: "Iced Tea", UnitPrice: decimal.NewFromInt(60), ImageURL: "/img/iced-tea.jpg"},
	{Name: "Veg Burger", UnitPrice: decimal.NewFromInt(100), ImageURL: "/img/veg-burger.jpg"},
	{Name: "Fries", UnitPrice: decimal.NewFromInt(65), ImageURL: "/img/fries.jpg"},
	{Name: "Brownie", UnitPrice: decimal.NewFromInt(90), ImageURL: "/img/brownie.jpg"},
}
