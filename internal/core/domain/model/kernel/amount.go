package kernel

import (
	"github.com/shopspring/decimal"

	"catering/internal/pkg/errs"
)

// Scale is the number of fractional digits every persisted monetary value and
// stock quantity carries.
const Scale int32 = 2

// Round rounds d to Scale fractional digits, half away from zero.
//
// Every value that is persisted goes through Round so that repeated restocks or
// recalculations of the same inputs always produce identical stored totals.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// NonNegative rounds value and rejects it with a ValueIsOutOfRangeError when negative.
func NonNegative(paramName string, value decimal.Decimal) (decimal.Decimal, error) {
	if value.IsNegative() {
		return decimal.Zero, errs.NewValueIsOutOfRangeError(paramName, value.String(), 0, "unbounded")
	}
	return Round(value), nil
}
