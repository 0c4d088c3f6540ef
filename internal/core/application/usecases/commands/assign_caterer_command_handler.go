package commands

import (
	"context"
)

// AssignCatererCommandHandler checks that the caterer and airport exist and records them
// on the order. Unknown references are reported as errs.ObjectNotFoundError.
type AssignCatererCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAssignCatererCommandHandler(uowFactory OrderUoWFactory) AssignCatererCommandHandler {
	return AssignCatererCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AssignCatererCommandHandler) Handle(ctx context.Context, cmd AssignCatererCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryTx(ctx, 1, func() error {
		return h.assign(ctx, cmd)
	})
}

func (h *AssignCatererCommandHandler) assign(ctx context.Context, cmd AssignCatererCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := checkFulfilmentReferences(ctx, uow.ReferenceDataLookup(), cmd.CatererID(), cmd.AirportID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AssignCaterer(cmd.CatererID(), cmd.AirportID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
