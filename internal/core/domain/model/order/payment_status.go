package order

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// PaymentStatus tracks billing independently of the workflow Status.
// Any valid value may follow any other: staff correct payment state freely.
type PaymentStatus int

const (
	UnknownPaymentStatus PaymentStatus = iota
	Unpaid
	PaymentRequested
	Paid
)

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		Unpaid:           "unpaid",
		PaymentRequested: "payment_requested",
		Paid:             "paid",
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for ps, str := range getValidPaymentStatusStrings() {
		if str == s {
			return ps, nil
		}
	}
	return UnknownPaymentStatus, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

func (p PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", p),
		)
	}
	return nil
}

func (p PaymentStatus) String() string {
	if str, ok := getValidPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}
