package commands_test

import (
	"context"
	"errors"
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bulkUoW(ctx context.Context, repo *MockOrderRepository, lookup *MockReferenceDataLookup) *MockOrderUoW {
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("ReferenceDataLookup").Return(lookup)
	return uow
}

func TestBulkUpdateOrdersCommandHandler_Handle_PartialSuccess(t *testing.T) {
	ctx := t.Context()
	target := order.OutForDelivery
	cmd, _ := commands.NewBulkUpdateOrdersCommand([]int64{1, 2, 3, 4, 1}, commands.BulkPatch{Status: &target})

	ready := assignedOrder(t, 1, order.ClientConfirmed, 5, 6)
	unassigned := existingOrder(t, 2, order.Delivery, order.ClientConfirmed)
	finished := existingOrder(t, 3, order.QEServHub, order.Completed)

	repo := new(MockOrderRepository)
	lookup := new(MockReferenceDataLookup)
	repo.On("GetForUpdate", ctx, int64(1)).Return(ready, nil).Once()
	repo.On("GetForUpdate", ctx, int64(2)).Return(unassigned, nil).Once()
	repo.On("GetForUpdate", ctx, int64(3)).Return(finished, nil).Once()
	repo.On("GetForUpdate", ctx, int64(4)).Return(nil, errs.NewObjectNotFoundError("order", int64(4))).Once()
	repo.On("Update", ctx, ready).Return(nil).Once()
	lookup.On("CatererExists", ctx, int64(5)).Return(true, nil).Once()
	lookup.On("AirportExists", ctx, int64(6)).Return(true, nil).Once()

	uow := bulkUoW(ctx, repo, lookup)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewBulkUpdateOrdersCommandHandler(factory, strictWorkflow())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, result.Applied)
	require.Len(t, result.Skipped, 3)
	assert.Equal(t, int64(2), result.Skipped[0].ID)
	assert.Contains(t, result.Skipped[0].Reason, "caterer")
	assert.Equal(t, int64(3), result.Skipped[1].ID)
	assert.Contains(t, result.Skipped[1].Reason, "terminal")
	assert.Equal(t, int64(4), result.Skipped[2].ID)
	assert.Contains(t, result.Skipped[2].Reason, "not found")

	assert.Equal(t, order.OutForDelivery, ready.Status())
	assert.Equal(t, order.ClientConfirmed, unassigned.Status())
	factory.AssertNumberOfCalls(t, "Create", 4)
	uow.AssertNumberOfCalls(t, "Commit", 1)
	repo.AssertExpectations(t)
}

func TestBulkUpdateOrdersCommandHandler_Handle_PaymentOnTerminalOrders(t *testing.T) {
	ctx := t.Context()
	paid := order.Paid
	cmd, _ := commands.NewBulkUpdateOrdersCommand([]int64{1, 2}, commands.BulkPatch{PaymentStatus: &paid})

	first := existingOrder(t, 1, order.DineIn, order.CancelledBillable)
	second := existingOrder(t, 2, order.Pickup, order.QuoteSent)

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", ctx, int64(1)).Return(first, nil).Once()
	repo.On("GetForUpdate", ctx, int64(2)).Return(second, nil).Once()
	repo.On("Update", ctx, mock.Anything).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(bulkUoW(ctx, repo, new(MockReferenceDataLookup)))

	h := commands.NewBulkUpdateOrdersCommandHandler(factory, strictWorkflow())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, result.Applied)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, order.Paid, first.PaymentStatus())
	assert.Equal(t, order.Paid, second.PaymentStatus())
}

func TestBulkUpdateOrdersCommandHandler_Handle_StatusFailureSkipsPayment(t *testing.T) {
	ctx := t.Context()
	paid := order.Paid
	target := order.QuoteSent
	cmd, _ := commands.NewBulkUpdateOrdersCommand([]int64{1}, commands.BulkPatch{Status: &target, PaymentStatus: &paid})

	finished := existingOrder(t, 1, order.DineIn, order.Completed)
	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", ctx, int64(1)).Return(finished, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(bulkUoW(ctx, repo, new(MockReferenceDataLookup)))

	h := commands.NewBulkUpdateOrdersCommandHandler(factory, strictWorkflow())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, result.Applied)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, order.Unpaid, finished.PaymentStatus())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestBulkUpdateOrdersCommandHandler_Handle_UnexpectedErrorHidesCause(t *testing.T) {
	ctx := t.Context()
	target := order.QuoteSent
	cmd, _ := commands.NewBulkUpdateOrdersCommand([]int64{7}, commands.BulkPatch{Status: &target})

	dbErr := errors.New("read tcp 10.0.0.5:5432: connection reset by peer")
	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", ctx, int64(7)).Return(nil, dbErr)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(bulkUoW(ctx, repo, new(MockReferenceDataLookup)))

	h := commands.NewBulkUpdateOrdersCommandHandler(factory, strictWorkflow())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, commands.ReasonInternal, result.Skipped[0].Reason)
	assert.NotContains(t, result.Skipped[0].Reason, "10.0.0.5")
	assert.ErrorIs(t, result.Skipped[0].Err, dbErr)
}

func TestBulkUpdateOrdersCommandHandler_Handle_RequireUniformType(t *testing.T) {
	ctx := t.Context()
	target := order.QuoteSent
	cmd, _ := commands.NewBulkUpdateOrdersCommand([]int64{1, 2}, commands.BulkPatch{Status: &target})

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, int64(1)).Return(existingOrder(t, 1, order.DineIn, order.QuotePending), nil).Once()
	repo.On("Get", ctx, int64(2)).Return(existingOrder(t, 2, order.Delivery, order.QuotePending), nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(bulkUoW(ctx, repo, new(MockReferenceDataLookup))).Once()

	h := commands.NewBulkUpdateOrdersCommandHandler(factory, strictWorkflow())
	result, err := h.Handle(ctx, cmd.RequiringUniformType())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Empty(t, result.Applied)
	repo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
}

func TestBulkUpdateOrdersCommandHandler_Handle_MixedTypesAllowedByDefault(t *testing.T) {
	ctx := t.Context()
	target := order.QuoteSent
	cmd, _ := commands.NewBulkUpdateOrdersCommand([]int64{1, 2}, commands.BulkPatch{Status: &target})

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", ctx, int64(1)).Return(existingOrder(t, 1, order.DineIn, order.QuotePending), nil).Once()
	repo.On("GetForUpdate", ctx, int64(2)).Return(existingOrder(t, 2, order.Delivery, order.QuotePending), nil).Once()
	repo.On("Update", ctx, mock.Anything).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(bulkUoW(ctx, repo, new(MockReferenceDataLookup)))

	h := commands.NewBulkUpdateOrdersCommandHandler(factory, strictWorkflow())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, result.Applied)
}

func TestBulkUpdateOrdersCommandHandler_Handle_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	paid := order.Paid
	cmd, _ := commands.NewBulkUpdateOrdersCommand([]int64{1, 2}, commands.BulkPatch{PaymentStatus: &paid})

	factory := new(MockOrderUoWFactory)

	h := commands.NewBulkUpdateOrdersCommandHandler(factory, strictWorkflow())
	result, err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Applied)
	factory.AssertNotCalled(t, "Create")
}
