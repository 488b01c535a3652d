package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/andreasstove999/sportsstore-go/internal/cart"
	"github.com/andreasstove999/sportsstore-go/internal/order"
)

var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

// ValidationError lists the shipping fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid shipping details: " + strings.Join(e.Fields, ", ")
}

type ShippingDetails struct {
	Name     string `json:"name"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Line3    string `json:"line3,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip,omitempty"`
	Country  string `json:"country"`
	GiftWrap bool   `json:"giftWrap"`
}

// Validate checks that every required field is non-blank. Line2, Line3 and
// Zip are optional.
func (d ShippingDetails) Validate() *ValidationError {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"line1", d.Line1},
		{"city", d.City},
		{"state", d.State},
		{"country", d.Country},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// OrderPlacedPublisher notifies downstream fulfillment of a completed
// checkout. Publish failures must not fail the checkout.
type OrderPlacedPublisher interface {
	PublishOrderPlaced(ctx context.Context, sessionKey string, o *order.Order) error
}

type Service struct {
	orders    order.Repository
	publisher OrderPlacedPublisher
	logger    *log.Logger
}

// NewService wires the checkout workflow. publisher may be nil when event
// publishing is disabled.
func NewService(orders order.Repository, publisher OrderPlacedPublisher, logger *log.Logger) *Service {
	return &Service{orders: orders, publisher: publisher, logger: logger}
}

// Checkout converts the cart into a persisted order, then clears the cart.
// The order must be durably saved before the cart is touched: on any failure
// the cart is left as it was so the user can retry.
func (s *Service) Checkout(ctx context.Context, sessionKey string, c *cart.Cart, details ShippingDetails) (string, error) {
	if c.Empty() {
		return "", ErrEmptyCart
	}
	if verr := details.Validate(); verr != nil {
		return "", verr
	}

	o := &order.Order{
		Name:      details.Name,
		Line1:     details.Line1,
		Line2:     details.Line2,
		Line3:     details.Line3,
		City:      details.City,
		State:     details.State,
		Zip:       details.Zip,
		Country:   details.Country,
		GiftWrap:  details.GiftWrap,
		Total:     c.Total(),
		CreatedAt: time.Now().UTC(),
	}
	for _, l := range c.Lines() {
		o.Lines = append(o.Lines, order.Line{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			UnitPrice:   l.Product.Price,
			Quantity:    l.Quantity,
		})
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return "", fmt.Errorf("save order: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, sessionKey, o); err != nil {
			// the order is already durable; fulfillment can still poll unshipped orders
			s.logger.Printf("publish OrderPlaced for %s failed: %v", o.ID, err)
		}
	}

	c.Clear()
	return o.ID, nil
}
