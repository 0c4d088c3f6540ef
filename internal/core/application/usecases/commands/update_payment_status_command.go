package commands

import (
	"errors"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

// UpdatePaymentStatusCommand sets the payment status of one order.
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       int64
	paymentStatus order.PaymentStatus

	guard guard.ConstructorGuard
}

func NewUpdatePaymentStatusCommand(orderID int64, ps order.PaymentStatus) (UpdatePaymentStatusCommand, error) {
	if err := errors.Join(validateID("order id", orderID), ps.Validate()); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return UpdatePaymentStatusCommand{
		orderID:       orderID,
		paymentStatus: ps,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

func (c UpdatePaymentStatusCommand) OrderID() int64 {
	return c.orderID
}

func (c UpdatePaymentStatusCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}
