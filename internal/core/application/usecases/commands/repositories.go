// Package commands contains the write use cases of the catering core.
// Every handler follows the same shape: validate the command, open a unit of work,
// load what it changes under a row lock, apply domain behaviour, persist and commit.
package commands

import (
	"context"

	"catering/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	NumberSequenceFactory interface {
		OrderNumberSequence() ports.OrderNumberSequence
	}

	ReferenceLookupFactory interface {
		ReferenceDataLookup() ports.ReferenceDataLookup
	}

	StockRepoFactory interface {
		StockItemRepository() ports.StockItemRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions that change existing orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ReferenceLookupFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderCreationUoW additionally allocates order numbers. The number sequence and
	// the order repository share one transaction, which is what keeps numbers unique.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   number, err := uow.OrderNumberSequence().Next(ctx, "KA")
	//   o, err := order.NewOrder(number, order.Delivery, "invoice", amounts)
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderCreationUoW interface {
		OrderUoW
		NumberSequenceFactory
	}

	OrderCreationUoWFactory interface {
		Create() OrderCreationUoW
	}

	// StockUoW manages transactions over stock items.
	StockUoW interface {
		TxManager
		StockRepoFactory
	}

	StockUoWFactory interface {
		Create() StockUoW
	}

	// OutboxUoW holds the row locks of the messages being relayed.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
