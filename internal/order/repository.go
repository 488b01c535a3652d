package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

type Repository interface {
	Save(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, orderID string) (*Order, error)
	Unshipped(ctx context.Context) ([]Order, error)
	MarkShipped(ctx context.Context, orderID string) error
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

// Save inserts the order and its lines in one transaction. The identifier is
// assigned here, one uuid per call, so concurrent checkouts never collide.
func (r *repo) Save(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, name, line1, line2, line3, city, state, zip, country, gift_wrap, shipped, total, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		o.ID, o.Name, o.Line1, o.Line2, o.Line3, o.City, o.State, o.Zip, o.Country,
		o.GiftWrap, o.Shipped, o.Total, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, l := range o.Lines {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_lines (id, order_id, product_id, product_name, unit_price, quantity)
             VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.NewString(), o.ID, l.ProductID, l.ProductName, l.UnitPrice, l.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert order_line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *repo) GetByID(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, line1, line2, line3, city, state, zip, country, gift_wrap, shipped, total, created_at
         FROM orders WHERE id = $1`,
		orderID,
	).Scan(&o.ID, &o.Name, &o.Line1, &o.Line2, &o.Line3, &o.City, &o.State, &o.Zip,
		&o.Country, &o.GiftWrap, &o.Shipped, &o.Total, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("select order: %w", err)
	}

	if err := r.loadLines(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Unshipped returns pending orders oldest first, for the fulfillment queue.
func (r *repo) Unshipped(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, line1, line2, line3, city, state, zip, country, gift_wrap, shipped, total, created_at
         FROM orders WHERE shipped = FALSE ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Name, &o.Line1, &o.Line2, &o.Line3, &o.City, &o.State,
			&o.Zip, &o.Country, &o.GiftWrap, &o.Shipped, &o.Total, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	for i := range orders {
		if err := r.loadLines(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *repo) MarkShipped(ctx context.Context, orderID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET shipped = TRUE WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repo) loadLines(ctx context.Context, o *Order) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, product_name, unit_price, quantity
         FROM order_lines WHERE order_id = $1`,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("select order_lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.UnitPrice, &l.Quantity); err != nil {
			return fmt.Errorf("scan order_line: %w", err)
		}
		o.Lines = append(o.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows: %w", err)
	}
	return nil
}
