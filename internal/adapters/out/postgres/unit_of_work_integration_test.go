package postgres_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	postgres_adapter "catering/internal/adapters/out/postgres"
	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/outboxrepo"
	"catering/internal/adapters/out/postgres/referencerepo"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/stock"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work and its repositories
// against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	workflow  services.OrderWorkflow
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
	suite.workflow = services.NewOrderWorkflow(order.PermissiveTransitionTable(), nil)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE orders, order_number_counters, stock_inventories,
		outbox_messages, caterers, airports RESTART IDENTITY`).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// createOrder allocates a number and inserts an order in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) createOrder(ctx context.Context, prefix string) (*order.Order, error) {
	uow := suite.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	number, err := uow.OrderNumberSequence().Next(ctx, prefix)
	if err != nil {
		return nil, err
	}
	o, err := order.NewOrder(number, order.Delivery, "invoice", order.Amounts{})
	if err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}
	return o, uow.Commit(ctx)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().Error(uow.Commit(ctx), "commit without transaction")
	suite.Require().Error(uow.Rollback(ctx), "rollback without transaction")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSequentialAllocation() {
	ctx := context.Background()

	first, err := suite.createOrder(ctx, "KA")
	suite.Require().NoError(err)
	second, err := suite.createOrder(ctx, "")
	suite.Require().NoError(err)
	other, err := suite.createOrder(ctx, "qe")
	suite.Require().NoError(err)

	suite.Equal("KA00001", first.Number().String())
	suite.Equal("KA00002", second.Number().String())
	suite.Equal("QE00001", other.Number().String())
	suite.Positive(first.ID())
	suite.NotEqual(first.ID(), second.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAllocationSeedsFromExistingOrders() {
	ctx := context.Background()
	legacy := orderrepo.OrderDTO{
		OrderNumber:   "KA00041",
		Type:          order.Pickup.String(),
		Status:        order.Completed.String(),
		PaymentStatus: order.Paid.String(),
	}
	suite.Require().NoError(suite.db.Create(&legacy).Error)

	o, err := suite.createOrder(ctx, "KA")

	suite.Require().NoError(err)
	suite.Equal("KA00042", o.Number().String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRolledBackAllocationIsReused() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	number, err := uow.OrderNumberSequence().Next(ctx, "KA")
	suite.Require().NoError(err)
	suite.Equal("KA00001", number.String())
	suite.Require().NoError(uow.Rollback(ctx))

	o, err := suite.createOrder(ctx, "KA")
	suite.Require().NoError(err)
	suite.Equal("KA00001", o.Number().String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAllocationSkipsNumbersInsertedBehindCounter() {
	ctx := context.Background()
	first, err := suite.createOrder(ctx, "KA")
	suite.Require().NoError(err)
	suite.Require().Equal("KA00001", first.Number().String())

	imported := orderrepo.OrderDTO{
		OrderNumber:   "KA00002",
		Type:          order.Pickup.String(),
		Status:        order.QuotePending.String(),
		PaymentStatus: order.Unpaid.String(),
	}
	suite.Require().NoError(suite.db.Create(&imported).Error)

	handler := commands.NewCreateOrderCommandHandler(orderCreationUoWFactory{suite.factory})
	cmd, err := commands.NewCreateOrderCommand("KA", order.Pickup, "", order.Amounts{})
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, cmd)

	suite.Require().NoError(err)
	suite.Equal("KA00003", result.Number)

	var counter orderrepo.CounterDTO
	suite.Require().NoError(suite.db.First(&counter, "prefix = ?", "KA").Error)
	suite.Equal(int64(3), counter.LastValue)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAllocationIsUnique() {
	ctx := context.Background()
	const workers = 20

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers = make(map[string]int)
		errList []error
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := suite.createOrder(ctx, "KA")
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errList = append(errList, err)
				return
			}
			numbers[o.Number().String()]++
		}()
	}
	wg.Wait()

	suite.Empty(errList)
	suite.Len(numbers, workers)
	for n, count := range numbers {
		suite.Equal(1, count, "number %s issued more than once", n)
	}
	suite.Contains(numbers, "KA00001")
	suite.Contains(numbers, "KA00020")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDuplicateNumberIsConflict() {
	ctx := context.Background()
	o, err := suite.createOrder(ctx, "KA")
	suite.Require().NoError(err)

	duplicate, err := order.NewOrder(o.Number(), order.Pickup, "", order.Amounts{})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	err = uow.OrderRepository().Add(ctx, duplicate)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransitionWritesOutboxOnCommit() {
	ctx := context.Background()
	created, err := suite.createOrder(ctx, "KA")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o, err := uow.OrderRepository().GetForUpdate(ctx, created.ID())
	suite.Require().NoError(err)
	event, err := suite.workflow.Transition(o, order.VendorConfirmed)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Empty(o.DomainEvents(), "events are cleared after commit")

	var stored []outboxrepo.MessageDTO
	suite.Require().NoError(suite.db.Find(&stored).Error)
	suite.Require().Len(stored, 1)
	suite.Equal(event.EventID.String(), stored[0].EventID)
	suite.Equal("order.status_changed", stored[0].Name)
	suite.Nil(stored[0].PublishedAt)

	var payload map[string]any
	suite.Require().NoError(json.Unmarshal(stored[0].Payload, &payload))
	suite.Equal("KA00001", payload["order_number"])
	suite.Equal("quote_pending", payload["previous_status"])
	suite.Equal("vendor_confirmed", payload["new_status"])

	reloaded, err := suite.factory.Create().OrderRepository().Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(order.VendorConfirmed, reloaded.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsChangeAndEvent() {
	ctx := context.Background()
	created, err := suite.createOrder(ctx, "KA")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o, err := uow.OrderRepository().GetForUpdate(ctx, created.ID())
	suite.Require().NoError(err)
	_, err = suite.workflow.Transition(o, order.CancelledNotBillable)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&outboxrepo.MessageDTO{}).Count(&count).Error)
	suite.Zero(count)

	reloaded, err := suite.factory.Create().OrderRepository().Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(order.QuotePending, reloaded.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRoundTrip() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Create(&referencerepo.CatererDTO{Name: "Sky Kitchen", Active: true}).Error)
	suite.Require().NoError(suite.db.Create(&referencerepo.AirportDTO{Code: "EGLF", Name: "Farnborough"}).Error)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	number, err := uow.OrderNumberSequence().Next(ctx, "KA")
	suite.Require().NoError(err)
	amounts, err := order.NewAmounts(order.Amounts{
		Total:      decimal.RequireFromString("100.10"),
		GrandTotal: decimal.RequireFromString("120.12"),
	})
	suite.Require().NoError(err)
	o, err := order.NewOrder(number, order.Delivery, "card", amounts)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AssignCaterer(1, 1))
	o.IssueRevision()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	lookup := suite.factory.Create().ReferenceDataLookup()
	exists, err := lookup.CatererExists(ctx, 1)
	suite.Require().NoError(err)
	suite.True(exists)
	exists, err = lookup.AirportExists(ctx, 2)
	suite.Require().NoError(err)
	suite.False(exists)

	reloaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("KA00001", reloaded.Number().String())
	suite.Equal(1, reloaded.Revision())
	suite.True(reloaded.HasFulfilmentAssignment())
	suite.True(decimal.RequireFromString("120.12").Equal(reloaded.Amounts().GrandTotal))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, 999)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentRestockLosesNoUpdate() {
	ctx := context.Background()
	item, err := stock.NewStockItem("Smoked salmon", "kg",
		decimal.NewFromInt(10), decimal.NewFromInt(20), decimal.NewFromInt(2), nil)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.StockItemRepository().Add(ctx, item))
	suite.Require().NoError(uow.Commit(ctx))

	const workers = 10
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- suite.restock(ctx, item.ID(), decimal.NewFromInt(1))
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		suite.Require().NoError(err)
	}

	reloaded, err := suite.factory.Create().StockItemRepository().Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(20).Equal(reloaded.Quantity()), "got %s", reloaded.Quantity())
	suite.True(decimal.NewFromInt(400).Equal(reloaded.TotalValue()), "got %s", reloaded.TotalValue())
	suite.NotNil(reloaded.LastRestockedDate())
}

func (suite *UnitOfWorkIntegrationTestSuite) restock(ctx context.Context, id int64, qty decimal.Decimal) error {
	uow := suite.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	item, err := uow.StockItemRepository().GetForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if err = item.Restock(qty, nil, time.Now()); err != nil {
		return err
	}
	if err = uow.StockItemRepository().Update(ctx, item); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOutboxRelayCycle() {
	ctx := context.Background()
	created, err := suite.createOrder(ctx, "KA")
	suite.Require().NoError(err)
	for _, target := range []order.Status{order.VendorConfirmed, order.ClientConfirmed} {
		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))
		o, getErr := uow.OrderRepository().GetForUpdate(ctx, created.ID())
		suite.Require().NoError(getErr)
		_, err = suite.workflow.Transition(o, target)
		suite.Require().NoError(err)
		suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
		suite.Require().NoError(uow.Commit(ctx))
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	pending, err := uow.OutboxRepository().GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Less(pending[0].ID, pending[1].ID)
	suite.Require().NoError(uow.OutboxRepository().MarkPublished(ctx, []int64{pending[0].ID}, time.Now()))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	pending, err = uow.OutboxRepository().GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Len(pending, 1)
}

type orderCreationUoWFactory struct {
	ports.UnitOfWorkFactory
}

func (f orderCreationUoWFactory) Create() commands.OrderCreationUoW {
	return f.UnitOfWorkFactory.Create()
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
