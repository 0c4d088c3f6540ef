package commands

import (
	"context"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
)

// TransitionOrderStatusCommandHandler applies a single status change. The order row is
// locked for the duration of the transaction and the resulting StatusChanged event is
// written to the outbox on commit.
//
// Example:
//
//	handler := NewTransitionOrderStatusCommandHandler(uowFactory, workflow)
//	cmd, _ := NewTransitionOrderStatusCommand(42, order.QuoteSent)
//
//	event, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPreconditionFailed) {
//	    // not allowed from the current status
//	}
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	workflow   services.OrderWorkflow
}

func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	workflow services.OrderWorkflow,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		workflow:   workflow,
	}
}

// Handle returns the recorded {order, previous, new} change.
func (h *TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (order.StatusChanged, error) {
	if err := cmd.Validate(); err != nil {
		return order.StatusChanged{}, err
	}

	var event order.StatusChanged
	err := retryTx(ctx, 1, func() error {
		var err error
		event, err = h.transition(ctx, cmd)
		return err
	})
	if err != nil {
		return order.StatusChanged{}, err
	}

	return event, nil
}

func (h *TransitionOrderStatusCommandHandler) transition(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (order.StatusChanged, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.StatusChanged{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return order.StatusChanged{}, err
	}

	event, err := transitionOrder(ctx, uow.ReferenceDataLookup(), h.workflow, o, cmd.Target())
	if err != nil {
		return order.StatusChanged{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.StatusChanged{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.StatusChanged{}, err
	}

	return event, nil
}
