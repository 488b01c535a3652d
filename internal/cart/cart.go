package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/sportsstore-go/internal/catalog"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

// Line pairs a product with the quantity in the cart. The product data is
// copied in, so a cart stays valid even if the catalog row changes later.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds the lines for one shopping session, at most one line per
// product. The zero value is an empty, usable cart.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// FromLines rebuilds a cart from previously persisted lines. Lines with a
// non-positive quantity are dropped rather than resurrected.
func FromLines(lines []Line) *Cart {
	c := New()
	for _, l := range lines {
		if l.Quantity > 0 {
			c.lines = append(c.lines, l)
		}
	}
	return c
}

// AddItem merges qty into the existing line for the product, or appends a
// new line. Lines keep their insertion order.
func (c *Cart) AddItem(p catalog.Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity += qty
			return nil
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: qty})
	return nil
}

// RemoveLine drops the line for productID. Removing an absent product is
// not an error.
func (c *Cart) RemoveLine(productID int64) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy; mutating it does not affect the cart.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}
