// Package postgres provides the GORM-based unit of work that the command handlers
// run in. Every repository handed out by a unit of work shares its transaction.
//
// Orders that pass through the order repository are tracked. On Commit their
// pending StatusChanged events are written to the outbox table inside the same
// transaction, so an event is stored if and only if the status change is.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if _, err = workflow.Transition(o, order.Completed); err != nil {
//	    return err
//	}
//	if err = uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// A unit of work is not safe for concurrent use; each goroutine creates its own.
package postgres

import (
	"context"

	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/outboxrepo"
	"catering/internal/adapters/out/postgres/referencerepo"
	"catering/internal/adapters/out/postgres/stockrepo"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction and tracks the aggregates
// modified in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []any
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	uow.trackedAggregates = nil

	return nil
}

// Commit flushes the domain events of tracked orders into the outbox and commits.
// Events are cleared from the aggregates only after the commit succeeded.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	orders := uow.trackedOrders()
	events := make([]order.StatusChanged, 0)
	for _, o := range orders {
		events = append(events, o.DomainEvents()...)
	}

	if err := uow.OutboxRepository().Add(ctx, events...); err != nil {
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, o := range orders {
		o.ClearDomainEvents()
	}
	uow.trackedAggregates = nil
	return nil
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction when no
// transaction is open, which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderNumberSequence() ports.OrderNumberSequence {
	return orderrepo.NewGormOrderNumberSequence(uow.conn())
}

func (uow *GormUnitOfWork) StockItemRepository() ports.StockItemRepository {
	return stockrepo.NewGormStockItemRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

func (uow *GormUnitOfWork) ReferenceDataLookup() ports.ReferenceDataLookup {
	return referencerepo.NewGormReferenceDataLookup(uow.conn())
}

// TrackAggregate registers an aggregate modified within this unit of work.
// Repositories call it after a successful write. Tracking the same aggregate
// twice keeps a single entry.
func (uow *GormUnitOfWork) TrackAggregate(aggregate any) {
	for _, tracked := range uow.trackedAggregates {
		if tracked == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

// conn returns the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) trackedOrders() []*order.Order {
	orders := make([]*order.Order, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		if o, ok := tracked.(*order.Order); ok {
			orders = append(orders, o)
		}
	}
	return orders
}
