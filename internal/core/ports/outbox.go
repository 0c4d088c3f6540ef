package ports

import (
	"context"
	"time"

	"catering/internal/core/domain/model/order"
)

// OutboxMessage is a committed domain event waiting to be published.
type OutboxMessage struct {
	ID         int64
	EventID    string
	Name       string
	Payload    []byte
	OccurredAt time.Time
}

// OutboxRepository stores domain events in the same transaction as the aggregate
// change that raised them.
type OutboxRepository interface {
	Add(ctx context.Context, events ...order.StatusChanged) error

	// GetUnpublished returns up to limit pending messages, oldest first, locking them
	// so that concurrent relays skip them.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []int64, at time.Time) error
}

// EventPublisher delivers outbox messages to the notification dispatcher.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
