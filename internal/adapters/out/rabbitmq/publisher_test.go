package rabbitmq

import (
	"context"
	"errors"
	"testing"
	"time"

	"catering/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) ExchangeDeclare(
	name, kind string,
	durable, autoDelete, internal, noWait bool,
	args amqp.Table,
) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func TestPublisher_EnsureExchange(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", "catering.notifications", "topic", true, false, false, false, amqp.Table(nil)).
		Return(nil)
	p := &Publisher{ch: ch, exchange: "catering.notifications"}

	require.NoError(t, p.EnsureExchange())
	ch.AssertExpectations(t)
}

func TestPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	occurred := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	msg := ports.OutboxMessage{
		ID:         7,
		EventID:    "4c0b6a4e-0f5e-4d4c-9a0e-8b9f0f1c2d3e",
		Name:       "order.status_changed",
		Payload:    []byte(`{"order_number":"KA00001"}`),
		OccurredAt: occurred,
	}

	t.Run("publishes persistent json routed by event name", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("PublishWithContext", ctx, "catering.notifications", "order.status_changed", false, false,
			mock.MatchedBy(func(p amqp.Publishing) bool {
				return p.DeliveryMode == amqp.Persistent &&
					p.ContentType == "application/json" &&
					p.MessageId == msg.EventID &&
					p.Timestamp.Equal(occurred) &&
					string(p.Body) == string(msg.Payload)
			})).Return(nil)
		p := &Publisher{ch: ch, exchange: "catering.notifications"}

		require.NoError(t, p.Publish(ctx, msg))
		ch.AssertExpectations(t)
	})

	t.Run("broker error is returned", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything).Return(amqp.ErrClosed)
		p := &Publisher{ch: ch, exchange: "catering.notifications"}

		err := p.Publish(ctx, msg)
		assert.True(t, errors.Is(err, amqp.ErrClosed))
	})
}

func TestPublisher_Close(t *testing.T) {
	ch := new(MockChannel)
	ch.On("Close").Return(nil)
	p := &Publisher{ch: ch}

	assert.NoError(t, p.Close())
	ch.AssertExpectations(t)
}
