package commands

import (
	"context"
)

// IssueRevisionCommandHandler increments the revision counter of an order.
type IssueRevisionCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewIssueRevisionCommandHandler(uowFactory OrderUoWFactory) IssueRevisionCommandHandler {
	return IssueRevisionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the new revision number.
func (h *IssueRevisionCommandHandler) Handle(ctx context.Context, cmd IssueRevisionCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var revision int
	err := retryTx(ctx, 1, func() error {
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

		revision = o.IssueRevision()
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
	if err != nil {
		return 0, err
	}

	return revision, nil
}
