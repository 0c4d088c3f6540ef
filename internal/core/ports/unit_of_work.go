package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repositories obtained after
// Begin share its transaction. On Commit the domain events of every order added or
// updated through it are written to the outbox before the transaction commits.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Calling it after Commit is a no-op error
	// and is safe to defer.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	OrderNumberSequence() OrderNumberSequence
	StockItemRepository() StockItemRepository
	OutboxRepository() OutboxRepository
	ReferenceDataLookup() ReferenceDataLookup
}
