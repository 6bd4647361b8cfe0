package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedProduct struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
}

// EnsureDemoProducts inserts the demo catalogue once into an empty table.
// Users are never seeded: the first registration bootstraps the admin.
func EnsureDemoProducts(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) error {
	seeds := []seedProduct{
		{Name: "Laptop", Description: "High-performance laptop for professionals", Price: 1299.99, Category: "Electronics", Stock: 15},
		{Name: "Wireless Mouse", Description: "Ergonomic wireless mouse with precision tracking", Price: 29.99, Category: "Electronics", Stock: 50},
		{Name: "Mechanical Keyboard", Description: "RGB mechanical keyboard with blue switches", Price: 89.99, Category: "Electronics", Stock: 25},
		{Name: `HD Monitor 27"`, Description: "27-inch Full HD monitor with IPS panel", Price: 249.99, Category: "Electronics", Stock: 10},
		{Name: "USB-C Hub", Description: "7-in-1 USB-C hub with power delivery", Price: 49.99, Category: "Accessories", Stock: 30},
		{Name: "Webcam 1080p", Description: "Full HD webcam with auto-focus", Price: 79.99, Category: "Electronics", Stock: 20},
		{Name: "Desk Lamp LED", Description: "Adjustable LED desk lamp with touch control", Price: 39.99, Category: "Office", Stock: 40},
		{Name: "Noise-Cancelling Headphones", Description: "Over-ear headphones with active noise cancellation", Price: 199.99, Category: "Audio", Stock: 12},
	}

	empty, err := productsEmpty(ctx, pool, timeout)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	for _, seed := range seeds {
		ctxInsert, cancel := context.WithTimeout(ctx, timeout)
		_, err := pool.Exec(ctxInsert, `
			INSERT INTO products (name, description, price, category, stock)
			VALUES ($1, $2, $3, $4, $5)
		`, seed.Name, seed.Description, seed.Price, seed.Category, seed.Stock)
		cancel()
		if err != nil {
			return fmt.Errorf("insert seed product %s: %w", seed.Name, err)
		}
	}

	return nil
}

func productsEmpty(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) (bool, error) {
	ctxCheck, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	row := pool.QueryRow(ctxCheck, "SELECT NOT EXISTS(SELECT 1 FROM products)")
	var empty bool
	if err := row.Scan(&empty); err != nil {
		return false, fmt.Errorf("check products empty: %w", err)
	}
	return empty, nil
}
