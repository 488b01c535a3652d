package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// EnsurePopulated inserts the sample catalog when the products table is empty.
func EnsurePopulated(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range seedProducts() {
		_, err := db.ExecContext(ctx,
			`INSERT INTO products (id, name, description, price, category) VALUES ($1, $2, $3, $4, $5)`,
			p.ID, p.Name, p.Description, p.Price, p.Category,
		)
		if err != nil {
			return fmt.Errorf("insert seed product %q: %w", p.Name, err)
		}
	}
	return nil
}

func seedProducts() []Product {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return []Product{
		{ID: 1, Name: "Kayak", Description: "A boat for one person", Price: price("275.00"), Category: "Watersports"},
		{ID: 2, Name: "Lifejacket", Description: "Protective and fashionable", Price: price("48.95"), Category: "Watersports"},
		{ID: 3, Name: "Soccer Ball", Description: "FIFA-approved size and weight", Price: price("19.50"), Category: "Soccer"},
		{ID: 4, Name: "Corner Flags", Description: "Give your playing field a professional touch", Price: price("34.95"), Category: "Soccer"},
		{ID: 5, Name: "Stadium", Description: "Flat-packed 35,000-seat stadium", Price: price("79500.00"), Category: "Soccer"},
		{ID: 6, Name: "Thinking Cap", Description: "Improve brain efficiency by 75%", Price: price("16.00"), Category: "Chess"},
		{ID: 7, Name: "Unsteady Chair", Description: "Secretly give your opponent a disadvantage", Price: price("29.95"), Category: "Chess"},
		{ID: 8, Name: "Human Chess Board", Description: "A fun game for the family", Price: price("75.00"), Category: "Chess"},
		{ID: 9, Name: "Bling-Bling King", Description: "Gold-plated, diamond-studded King", Price: price("1200.00"), Category: "Chess"},
	}
}
