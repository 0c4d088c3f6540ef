package commands

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"catering/internal/core/domain/model/stock"
	"catering/internal/pkg/guard"
)

var ErrCreateStockItemCommandIsNotConstructed = errors.New(
	"CreateStockItemCommand must be created via NewCreateStockItemCommand constructor",
)

// CreateStockItemCommand registers a new inventory line.
type CreateStockItemCommand struct { //nolint:recvcheck //using for validation
	name            string
	unit            string
	quantity        decimal.Decimal
	unitCost        decimal.Decimal
	minimumQuantity decimal.Decimal
	expiryDate      *time.Time

	guard guard.ConstructorGuard
}

// NewCreateStockItemCommand validates the item by building it once, so that the handler
// only fails on persistence.
func NewCreateStockItemCommand(
	name, unit string,
	quantity, unitCost, minimumQuantity decimal.Decimal,
	expiryDate *time.Time,
) (CreateStockItemCommand, error) {
	if _, err := stock.NewStockItem(name, unit, quantity, unitCost, minimumQuantity, expiryDate); err != nil {
		return CreateStockItemCommand{}, err
	}

	return CreateStockItemCommand{
		name:            name,
		unit:            unit,
		quantity:        quantity,
		unitCost:        unitCost,
		minimumQuantity: minimumQuantity,
		expiryDate:      expiryDate,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CreateStockItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateStockItemCommandIsNotConstructed)
}

func (c CreateStockItemCommand) Name() string {
	return c.name
}

func (c CreateStockItemCommand) Unit() string {
	return c.unit
}

func (c CreateStockItemCommand) Quantity() decimal.Decimal {
	return c.quantity
}

func (c CreateStockItemCommand) UnitCost() decimal.Decimal {
	return c.unitCost
}

func (c CreateStockItemCommand) MinimumQuantity() decimal.Decimal {
	return c.minimumQuantity
}

func (c CreateStockItemCommand) ExpiryDate() *time.Time {
	return c.expiryDate
}
