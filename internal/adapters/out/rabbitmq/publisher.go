// Package rabbitmq delivers outbox messages to a RabbitMQ topic exchange.
// Messages are routed by event name, so consumers bind with keys such as
// "order.status_changed" or "order.#".
package rabbitmq

import (
	"context"
	"errors"

	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
}

var _ ports.EventPublisher = (*Publisher)(nil)

// Dial connects to url and declares exchange as a durable topic exchange.
func Dial(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		return nil, errs.NewValueIsRequiredError("exchange")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	p := &Publisher{conn: conn, ch: ch, exchange: exchange}
	if err = p.EnsureExchange(); err != nil {
		_ = p.Close()
		return nil, err
	}
	return p, nil
}

func (p *Publisher) EnsureExchange() error {
	return p.ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil)
}

// Publish sends msg as a persistent JSON message. The event id travels as the
// AMQP message id so that consumers can drop redeliveries.
func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	return p.ch.PublishWithContext(ctx, p.exchange, msg.Name, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    msg.EventID,
		Type:         msg.Name,
		Timestamp:    msg.OccurredAt,
		Body:         msg.Payload,
	})
}

func (p *Publisher) Close() error {
	var chErr, connErr error
	if p.ch != nil {
		chErr = p.ch.Close()
	}
	if p.conn != nil {
		connErr = p.conn.Close()
	}
	return errors.Join(chErr, connErr)
}
