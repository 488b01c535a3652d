package events

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange        = "sportsstore.events"
	OrderPlacedRoutingKey = "order.placed.v1"
	storeServiceName      = "store-service"
)

func declareEventsExchange(ch *amqp.Channel) error {
	return ch.ExchangeDeclare(
		EventsExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
}

// Dial connects to RabbitMQ at the given URL.
func Dial(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	return conn, nil
}
