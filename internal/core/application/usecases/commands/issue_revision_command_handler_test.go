package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueRevisionCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewIssueRevisionCommand(3)
	existing := existingOrder(t, 3, order.Pickup, order.QuoteSent)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetForUpdate", ctx, int64(3)).Return(existing, nil).Once()
	repo.On("Update", ctx, existing).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewIssueRevisionCommandHandler(factory)
	revision, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, revision)
	assert.Equal(t, 1, existing.Revision())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
