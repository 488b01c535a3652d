package catalog

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64           `json:"productId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}
