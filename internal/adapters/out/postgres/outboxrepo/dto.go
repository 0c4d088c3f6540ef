// Package outboxrepo stores domain events in the same transaction as the aggregate
// change that raised them, for later relay to the message broker.
package outboxrepo

import (
	"encoding/json"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
)

type MessageDTO struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	EventID     string     `gorm:"size:36;not null;uniqueIndex"`
	Name        string     `gorm:"size:64;not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// statusChangedPayload is the wire form of order.StatusChanged. Consumers read it
// as JSON, so field names are part of the contract.
type statusChangedPayload struct {
	EventID     string    `json:"event_id"`
	OrderID     int64     `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Previous    string    `json:"previous_status"`
	New         string    `json:"new_status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func fromEvent(event order.StatusChanged) (MessageDTO, error) {
	payload, err := json.Marshal(statusChangedPayload{
		EventID:     event.EventID.String(),
		OrderID:     event.OrderID,
		OrderNumber: event.OrderNumber,
		Previous:    event.Previous.String(),
		New:         event.New.String(),
		OccurredAt:  event.OccurredAt,
	})
	if err != nil {
		return MessageDTO{}, err
	}

	return MessageDTO{
		EventID:    event.EventID.String(),
		Name:       event.Name(),
		Payload:    payload,
		OccurredAt: event.OccurredAt,
	}, nil
}

func toMessage(dto MessageDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:         dto.ID,
		EventID:    dto.EventID,
		Name:       dto.Name,
		Payload:    dto.Payload,
		OccurredAt: dto.OccurredAt,
	}
}
