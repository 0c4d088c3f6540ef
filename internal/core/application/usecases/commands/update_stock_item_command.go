package commands

import (
	"errors"

	"catering/internal/core/domain/model/stock"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrUpdateStockItemCommandIsNotConstructed = errors.New(
		"UpdateStockItemCommand must be created via NewUpdateStockItemCommand constructor",
	)
	ErrStockItemChangeIsEmpty = errs.NewValueIsRequiredError("stock item change")
)

// UpdateStockItemCommand adjusts a stock item by hand: any field of the patch, and
// optionally its active flag.
type UpdateStockItemCommand struct { //nolint:recvcheck //using for validation
	stockItemID int64
	patch       stock.Patch
	active      *bool

	guard guard.ConstructorGuard
}

// NewUpdateStockItemCommand requires at least one change. A nil active leaves the flag alone.
func NewUpdateStockItemCommand(stockItemID int64, patch stock.Patch, active *bool) (UpdateStockItemCommand, error) {
	if err := validateID("stock item id", stockItemID); err != nil {
		return UpdateStockItemCommand{}, err
	}
	if patch.IsEmpty() && active == nil {
		return UpdateStockItemCommand{}, ErrStockItemChangeIsEmpty
	}

	return UpdateStockItemCommand{
		stockItemID: stockItemID,
		patch:       patch,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateStockItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStockItemCommandIsNotConstructed)
}

func (c UpdateStockItemCommand) StockItemID() int64 {
	return c.stockItemID
}

func (c UpdateStockItemCommand) Patch() stock.Patch {
	return c.patch
}

func (c UpdateStockItemCommand) Active() *bool {
	return c.active
}
