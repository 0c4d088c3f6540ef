package cmd

import (
	"log/slog"
	"time"

	"catering/internal/adapters/out/postgres"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	workflow   services.OrderWorkflow
	logger     *slog.Logger
}

// NewCompositionRoot fails when WORKFLOW_MODE names an unknown mode.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	table, err := services.TransitionTableForMode(config.WorkflowMode)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		workflow:   services.NewOrderWorkflow(table, time.Now),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) Workflow() services.OrderWorkflow {
	return c.workflow
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stockUoWFactory() commands.StockUoWFactory {
	return FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderCreationUoWFactory = FuncOrderCreationUoWFactory(func() commands.OrderCreationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(c.orderUoWFactory(), c.workflow)
}

func (c *CompositionRoot) CreateUpdatePaymentStatusCommandHandler() commands.UpdatePaymentStatusCommandHandler {
	return commands.NewUpdatePaymentStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignCatererCommandHandler() commands.AssignCatererCommandHandler {
	return commands.NewAssignCatererCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateIssueRevisionCommandHandler() commands.IssueRevisionCommandHandler {
	return commands.NewIssueRevisionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateBulkUpdateOrdersCommandHandler() commands.BulkUpdateOrdersCommandHandler {
	return commands.NewBulkUpdateOrdersCommandHandler(c.orderUoWFactory(), c.workflow)
}

func (c *CompositionRoot) CreateCreateStockItemCommandHandler() commands.CreateStockItemCommandHandler {
	return commands.NewCreateStockItemCommandHandler(c.stockUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStockItemCommandHandler() commands.UpdateStockItemCommandHandler {
	return commands.NewUpdateStockItemCommandHandler(c.stockUoWFactory())
}

func (c *CompositionRoot) CreateRestockStockItemCommandHandler() commands.RestockStockItemCommandHandler {
	return commands.NewRestockStockItemCommandHandler(c.stockUoWFactory(), time.Now)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(publisher ports.EventPublisher) commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, publisher, time.Now)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.workflow)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockAlertsQueryHandler() queries.GetStockAlertsQueryHandler {
	return queries.NewGetStockAlertsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockValuationQueryHandler() queries.GetStockValuationQueryHandler {
	return queries.NewGetStockValuationQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs. Without a publisher the outbox relay
// is not scheduled and events accumulate until one is configured.
func (c *CompositionRoot) CreateJobManager(publisher ports.EventPublisher) *jobs.JobManager {
	var relay *jobs.OutboxRelayJob
	if publisher != nil {
		relay = jobs.NewOutboxRelayJob(
			c.CreateRelayOutboxCommandHandler(publisher),
			c.config.OutboxRelaySchedule,
			c.config.OutboxRelayBatch,
			c.logger,
		)
	}

	alerts := jobs.NewStockAlertJob(
		c.CreateGetStockAlertsQueryHandler(),
		c.config.StockAlertSchedule,
		c.config.StockExpiryHorizon,
		c.logger,
	)

	return jobs.NewJobManager(relay, alerts)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderCreationUoWFactory func() commands.OrderCreationUoW

func (f FuncOrderCreationUoWFactory) Create() commands.OrderCreationUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
