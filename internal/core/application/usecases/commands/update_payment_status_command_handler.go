package commands

import (
	"context"
)

// UpdatePaymentStatusCommandHandler sets the payment status regardless of the workflow
// status, terminal orders included. Setting the current value commits nothing.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdatePaymentStatusCommandHandler(uowFactory OrderUoWFactory) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdatePaymentStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryTx(ctx, 1, func() error {
		return h.update(ctx, cmd)
	})
}

func (h *UpdatePaymentStatusCommandHandler) update(ctx context.Context, cmd UpdatePaymentStatusCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	changed, err := o.SetPaymentStatus(cmd.PaymentStatus())
	if err != nil || !changed {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
