package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrRestockStockItemCommandIsNotConstructed = errors.New(
	"RestockStockItemCommand must be created via NewRestockStockItemCommand constructor",
)

// RestockStockItemCommand books a delivery of stock. A nil or zero new unit cost keeps
// the current cost.
type RestockStockItemCommand struct { //nolint:recvcheck //using for validation
	stockItemID int64
	addQuantity decimal.Decimal
	newUnitCost *decimal.Decimal

	guard guard.ConstructorGuard
}

func NewRestockStockItemCommand(
	stockItemID int64,
	addQuantity decimal.Decimal,
	newUnitCost *decimal.Decimal,
) (RestockStockItemCommand, error) {
	_, errQty := kernel.NonNegative("restock quantity", addQuantity)
	var errCost error
	if newUnitCost != nil && newUnitCost.IsNegative() {
		errCost = errs.NewValueIsOutOfRangeError("new unit cost", newUnitCost.String(), 0, "unbounded")
	}
	if err := errors.Join(validateID("stock item id", stockItemID), errQty, errCost); err != nil {
		return RestockStockItemCommand{}, err
	}

	return RestockStockItemCommand{
		stockItemID: stockItemID,
		addQuantity: addQuantity,
		newUnitCost: newUnitCost,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RestockStockItemCommand) Validate() error {
	return c.guard.Validate(ErrRestockStockItemCommandIsNotConstructed)
}

func (c RestockStockItemCommand) StockItemID() int64 {
	return c.stockItemID
}

func (c RestockStockItemCommand) AddQuantity() decimal.Decimal {
	return c.addQuantity
}

func (c RestockStockItemCommand) NewUnitCost() *decimal.Decimal {
	return c.newUnitCost
}
