package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"storefront/internal/domain"
)

// AMQPPublisher publishes events to a durable topic exchange.
type AMQPPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func Dial(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPPublisher{conn: conn, ch: ch}, nil
}

func (p *AMQPPublisher) CheckoutStarted(ctx context.Context, cart *domain.Cart) error {
	envelope := NewCheckoutStarted(cart)
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return p.ch.PublishWithContext(ctx, Exchange, CheckoutStartedRoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		MessageId:    envelope.EventID,
		Timestamp:    envelope.OccurredAt,
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

func (p *AMQPPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
