package order

import (
	"errors"

	"github.com/shopspring/decimal"

	"catering/internal/core/domain/model/kernel"
)

// Amounts groups the monetary fields of an order. Every value is non-negative and
// held at two fractional digits.
type Amounts struct {
	Total          decimal.Decimal
	TotalTax       decimal.Decimal
	TotalCharges   decimal.Decimal
	Discount       decimal.Decimal
	ManualDiscount decimal.Decimal
	DeliveryCharge decimal.Decimal
	GrandTotal     decimal.Decimal
	VendorCost     decimal.Decimal
}

// NewAmounts rounds every field of raw and rejects negative values.
func NewAmounts(raw Amounts) (Amounts, error) {
	var problems []error
	checked := func(name string, value decimal.Decimal) decimal.Decimal {
		rounded, err := kernel.NonNegative(name, value)
		problems = append(problems, err)
		return rounded
	}

	a := Amounts{
		Total:          checked("total", raw.Total),
		TotalTax:       checked("total tax", raw.TotalTax),
		TotalCharges:   checked("total charges", raw.TotalCharges),
		Discount:       checked("discount", raw.Discount),
		ManualDiscount: checked("manual discount", raw.ManualDiscount),
		DeliveryCharge: checked("delivery charge", raw.DeliveryCharge),
		GrandTotal:     checked("grand total", raw.GrandTotal),
		VendorCost:     checked("vendor cost", raw.VendorCost),
	}

	if err := errors.Join(problems...); err != nil {
		return Amounts{}, err
	}
	return a, nil
}
