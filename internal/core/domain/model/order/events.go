package order

import (
	"time"

	"catering/internal/core/domain/model/kernel"
)

// StatusChanged is raised by Order.Transition and handed to the notification
// dispatcher through the outbox once the transition is committed.
type StatusChanged struct {
	EventID     kernel.UUID
	OrderID     int64
	OrderNumber string
	Previous    Status
	New         Status
	OccurredAt  time.Time
}

// Name is the routing key the event is published under.
func (e StatusChanged) Name() string {
	return "order.status_changed"
}
