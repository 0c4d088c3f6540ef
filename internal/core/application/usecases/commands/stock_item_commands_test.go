package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/stock"
	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateStockItemCommand(t *testing.T) {
	cmd, err := commands.NewCreateStockItemCommand("Rice", "kg", dec("25"), dec("1.2"), dec("10"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Rice", cmd.Name())
	assert.True(t, cmd.Quantity().Equal(dec("25")))

	_, err = commands.NewCreateStockItemCommand("", "kg", dec("-1"), dec("1"), dec("0"), nil)
	assert.ErrorIs(t, err, stock.ErrNameIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewUpdateStockItemCommand(t *testing.T) {
	_, err := commands.NewUpdateStockItemCommand(1, stock.Patch{}, nil)
	assert.ErrorIs(t, err, commands.ErrStockItemChangeIsEmpty)

	inactive := false
	cmd, err := commands.NewUpdateStockItemCommand(1, stock.Patch{}, &inactive)
	require.NoError(t, err)
	assert.False(t, *cmd.Active())
}

func TestNewRestockStockItemCommand(t *testing.T) {
	negative := dec("-7")

	_, err := commands.NewRestockStockItemCommand(0, dec("-1"), &negative)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "stock item id")
	assert.Contains(t, err.Error(), "restock quantity")
	assert.Contains(t, err.Error(), "new unit cost")
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptrDec(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}
