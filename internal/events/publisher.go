package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/andreasstove999/sportsstore-go/internal/order"
)

// RabbitPublisher emits store events on the topic exchange. Fulfillment
// workers bind their own queues to order.placed.v1.
type RabbitPublisher struct {
	ch  *amqp.Channel
	seq SequenceRepository
}

func NewRabbitPublisher(conn *amqp.Connection, seq SequenceRepository) (*RabbitPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareEventsExchange(ch); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &RabbitPublisher{ch: ch, seq: seq}, nil
}

func (p *RabbitPublisher) Close() error {
	return p.ch.Close()
}

func (p *RabbitPublisher) PublishOrderPlaced(ctx context.Context, sessionKey string, o *order.Order) error {
	seq, err := p.seq.NextSequence(ctx, sessionKey)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ev := BuildOrderPlacedEvent(o, sessionKey, seq)
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal OrderPlaced: %w", err)
	}

	return p.publishJSON(ctx, OrderPlacedRoutingKey, body)
}

func (p *RabbitPublisher) publishJSON(ctx context.Context, routingKey string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
