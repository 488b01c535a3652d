package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is a frozen snapshot of one cart line taken at checkout. Product name
// and price are copied so later catalog edits never rewrite order history.
type Line struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

type Order struct {
	ID string `json:"orderId"`

	// shipping details
	Name    string `json:"name"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	Line3   string `json:"line3,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country"`

	GiftWrap bool `json:"giftWrap"`
	Shipped  bool `json:"shipped"`

	Lines     []Line          `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}
