package order

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// Type classifies an order and governs which workflow moves and associations apply.
type Type int

const (
	UnknownType Type = iota
	DineIn
	Delivery
	Pickup
	QEServHub
)

func getValidTypeStrings() map[Type]string {
	return map[Type]string{
		DineIn:    "dine_in",
		Delivery:  "delivery",
		Pickup:    "pickup",
		QEServHub: "qe_serv_hub",
	}
}

// AllTypes returns every valid order type.
func AllTypes() []Type {
	return []Type{DineIn, Delivery, Pickup, QEServHub}
}

func ParseType(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"order type is invalid",
		fmt.Errorf("%q is not a valid order type", s),
	)
}

func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getValidTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// RequiresFulfilmentAssignment reports whether orders of this type need an assigned
// caterer and delivery airport before going out for delivery or completing.
func (t Type) RequiresFulfilmentAssignment() bool {
	return t == Delivery
}
