package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewTransitionOrderStatusCommand(4, order.QuoteSent)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cmd.OrderID())
	assert.Equal(t, order.QuoteSent, cmd.Target())

	_, err = commands.NewTransitionOrderStatusCommand(0, order.UnknownStatus)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCommandConstructors_RejectBadInput(t *testing.T) {
	_, err := commands.NewUpdatePaymentStatusCommand(1, order.UnknownPaymentStatus)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAssignCatererCommand(1, 0, 2)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewIssueRevisionCommand(-3)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
