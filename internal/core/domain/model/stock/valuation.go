package stock

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// Valuation is the quantity, unit cost and derived total value of a stock item.
// Values produced by this package always satisfy
// TotalValue == round(Quantity * UnitCost, 2).
type Valuation struct {
	Quantity   decimal.Decimal
	UnitCost   decimal.Decimal
	TotalValue decimal.Decimal
}

// Create values a new stock item.
func Create(quantity, unitCost decimal.Decimal) (Valuation, error) {
	qty, errQty := kernel.NonNegative("quantity", quantity)
	cost, errCost := kernel.NonNegative("unit cost", unitCost)
	if err := errors.Join(errQty, errCost); err != nil {
		return Valuation{}, err
	}
	return valued(qty, cost), nil
}

// Update recomputes the valuation after an adjustment. A nil quantity or unit cost
// keeps the current value.
func Update(current Valuation, newQuantity, newUnitCost *decimal.Decimal) (Valuation, error) {
	quantity, unitCost := current.Quantity, current.UnitCost
	if newQuantity != nil {
		quantity = *newQuantity
	}
	if newUnitCost != nil {
		unitCost = *newUnitCost
	}
	return Create(quantity, unitCost)
}

// Restock adds addQuantity to the current stock.
//
// With a positive newUnitCost the unit cost becomes the weighted average of the
// current stock and the delivery:
//
//	(currentQty*currentCost + addQty*newUnitCost) / (currentQty + addQty)
//
// Otherwise the unit cost is kept. When the resulting quantity is zero no average is
// taken and the current unit cost is kept as well.
func Restock(current Valuation, addQuantity decimal.Decimal, newUnitCost *decimal.Decimal) (Valuation, error) {
	currentQty, errQty := kernel.NonNegative("quantity", current.Quantity)
	currentCost, errCost := kernel.NonNegative("unit cost", current.UnitCost)
	_, errAdd := kernel.NonNegative("restock quantity", addQuantity)
	var errNew error
	if newUnitCost != nil && newUnitCost.IsNegative() {
		errNew = errs.NewValueIsOutOfRangeError("new unit cost", newUnitCost.String(), 0, "unbounded")
	}
	if err := errors.Join(errQty, errCost, errAdd, errNew); err != nil {
		return Valuation{}, err
	}

	// Only the averaged cost is rounded; the delivery enters the blend unrounded.
	rawQuantity := currentQty.Add(addQuantity)
	quantity := kernel.Round(rawQuantity)
	if newUnitCost == nil || !newUnitCost.IsPositive() || rawQuantity.IsZero() {
		return valued(quantity, currentCost), nil
	}

	blended := currentQty.Mul(currentCost).Add(addQuantity.Mul(*newUnitCost))
	return valued(quantity, kernel.Round(blended.Div(rawQuantity))), nil
}

// Verify reports whether v satisfies the total value invariant.
func (v Valuation) Verify() error {
	expected := kernel.Round(v.Quantity.Mul(v.UnitCost))
	if !expected.Equal(v.TotalValue) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total value",
			fmt.Errorf("%s != round(%s * %s, 2)", v.TotalValue, v.Quantity, v.UnitCost),
		)
	}
	return nil
}

func valued(quantity, unitCost decimal.Decimal) Valuation {
	return Valuation{
		Quantity:   quantity,
		UnitCost:   unitCost,
		TotalValue: kernel.Round(quantity.Mul(unitCost)),
	}
}
