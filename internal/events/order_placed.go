package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andreasstove999/sportsstore-go/internal/order"
)

const (
	OrderPlacedEventName  = "OrderPlaced"
	OrderPlacedVersion    = 1
	OrderPlacedSchemaPath = "contracts/events/order/OrderPlaced.v1.enveloped.schema.json"
)

// EventEnvelope is the common wrapper for every event this service emits.
type EventEnvelope[T any] struct {
	EventName    string    `json:"eventName"`
	EventVersion int       `json:"eventVersion"`
	EventID      string    `json:"eventId"`
	Producer     string    `json:"producer"`
	PartitionKey string    `json:"partitionKey"`
	Sequence     int64     `json:"sequence"`
	OccurredAt   time.Time `json:"occurredAt"`
	Schema       string    `json:"schema"`
	Payload      T         `json:"payload"`
}

type OrderPlacedPayload struct {
	OrderID  string            `json:"orderId"`
	Name     string            `json:"name"`
	GiftWrap bool              `json:"giftWrap"`
	Lines    []OrderPlacedLine `json:"lines"`
	Total    decimal.Decimal   `json:"total"`
	PlacedAt time.Time         `json:"placedAt"`
}

type OrderPlacedLine struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

// BuildOrderPlacedEvent wraps an order snapshot in the event envelope.
// Sequence numbers are per partition key (the session that placed the order).
func BuildOrderPlacedEvent(o *order.Order, partitionKey string, sequence int64) EventEnvelope[OrderPlacedPayload] {
	payload := OrderPlacedPayload{
		OrderID:  o.ID,
		Name:     o.Name,
		GiftWrap: o.GiftWrap,
		Total:    o.Total,
		PlacedAt: o.CreatedAt,
	}
	for _, l := range o.Lines {
		payload.Lines = append(payload.Lines, OrderPlacedLine{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
	}

	return EventEnvelope[OrderPlacedPayload]{
		EventName:    OrderPlacedEventName,
		EventVersion: OrderPlacedVersion,
		EventID:      uuid.NewString(),
		Producer:     storeServiceName,
		PartitionKey: partitionKey,
		Sequence:     sequence,
		OccurredAt:   time.Now().UTC(),
		Schema:       OrderPlacedSchemaPath,
		Payload:      payload,
	}
}
