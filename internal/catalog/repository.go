package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrProductNotFound = errors.New("product not found")

type Repository interface {
	GetProduct(ctx context.Context, id int64) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

func (r *repo) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, price, category FROM products WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("select product: %w", err)
	}
	return &p, nil
}

func (r *repo) ListProducts(ctx context.Context) ([]Product, error) {
	return r.list(ctx,
		`SELECT id, name, description, price, category FROM products ORDER BY id`)
}

func (r *repo) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	return r.list(ctx,
		`SELECT id, name, description, price, category FROM products WHERE category = $1 ORDER BY id`,
		category)
}

func (r *repo) list(ctx context.Context, query string, args ...any) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return products, nil
}
