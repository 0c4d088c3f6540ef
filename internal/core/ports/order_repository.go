// Package ports defines the contracts between the catering core and its infrastructure.
package ports

import (
	"context"

	"catering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add inserts a new order and assigns its database id via Identify.
	// A duplicate order number is reported as errs.ConflictError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order without locking it.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate loads an order and holds a row lock on it until the
	// surrounding transaction ends. Status and payment changes go through it so
	// concurrent edits of the same order are serialized.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)
}

// OrderNumberSequence hands out order numbers.
type OrderNumberSequence interface {
	// Next reserves the next number for prefix. The reservation is made under a
	// per-prefix lock held by the surrounding transaction, so the order insert must
	// happen in the same transaction. Numbers of rolled back transactions are reused.
	Next(ctx context.Context, prefix string) (order.Number, error)
}

// ReferenceDataLookup answers existence questions about records owned by other
// parts of the system.
type ReferenceDataLookup interface {
	CatererExists(ctx context.Context, id int64) (bool, error)
	AirportExists(ctx context.Context, id int64) (bool, error)
}
