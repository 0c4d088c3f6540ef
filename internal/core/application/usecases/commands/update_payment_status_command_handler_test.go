package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdatePaymentStatusCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdatePaymentStatusCommand(5, order.Paid)
	existing := existingOrder(t, 5, order.DineIn, order.CancelledBillable)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, int64(5)).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePaymentStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Paid, existing.PaymentStatus())
	assert.Equal(t, order.CancelledBillable, existing.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdatePaymentStatusCommandHandler_Handle_SameValue(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdatePaymentStatusCommand(5, order.Unpaid)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetForUpdate", ctx, int64(5)).Return(existingOrder(t, 5, order.DineIn, order.QuoteSent), nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePaymentStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
