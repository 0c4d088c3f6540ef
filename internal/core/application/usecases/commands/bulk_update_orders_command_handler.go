package commands

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/pkg/errs"
)

// ReasonInternal replaces the reason of orders skipped for an unexpected error.
const ReasonInternal = "internal error"

// SkippedOrder explains why one order of a batch was left unchanged. Reason is safe to
// show to clients; Err keeps the original error for logging.
type SkippedOrder struct {
	ID     int64
	Reason string
	Err    error
}

// BulkResult reports the outcome of every order of a batch. Each id appears exactly once,
// either in Applied or in Skipped.
type BulkResult struct {
	Applied []int64
	Skipped []SkippedOrder
}

// BulkUpdateOrdersCommandHandler applies a patch order by order, each in its own
// transaction and through the same workflow as single updates. A failing order is
// skipped with its reason and does not block the rest of the batch.
//
// Only a cancelled context stops the batch early; the result then covers the orders
// processed so far and the context error is returned alongside it.
type BulkUpdateOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	workflow   services.OrderWorkflow
}

func NewBulkUpdateOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	workflow services.OrderWorkflow,
) BulkUpdateOrdersCommandHandler {
	return BulkUpdateOrdersCommandHandler{
		uowFactory: uowFactory,
		workflow:   workflow,
	}
}

func (h *BulkUpdateOrdersCommandHandler) Handle(ctx context.Context, cmd BulkUpdateOrdersCommand) (BulkResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkResult{}, err
	}

	if cmd.RequireUniformType() {
		if err := h.checkUniformType(ctx, cmd.IDs()); err != nil {
			return BulkResult{}, err
		}
	}

	result := BulkResult{
		Applied: make([]int64, 0, len(cmd.IDs())),
		Skipped: make([]SkippedOrder, 0),
	}
	for _, id := range cmd.IDs() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := retryTx(ctx, 1, func() error {
			return h.apply(ctx, id, cmd.Patch())
		})
		switch {
		case err == nil:
			result.Applied = append(result.Applied, id)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return result, err
		default:
			result.Skipped = append(result.Skipped, skipped(id, err))
		}
	}

	return result, nil
}

func skipped(id int64, err error) SkippedOrder {
	reason := err.Error()
	if !errs.IsExpected(err) {
		reason = ReasonInternal
	}
	return SkippedOrder{ID: id, Reason: reason, Err: err}
}

func (h *BulkUpdateOrdersCommandHandler) apply(ctx context.Context, id int64, patch BulkPatch) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, id)
	if err != nil {
		return err
	}

	if patch.Status != nil {
		if _, err = transitionOrder(ctx, uow.ReferenceDataLookup(), h.workflow, o, *patch.Status); err != nil {
			return err
		}
	}

	changed := patch.Status != nil
	if patch.PaymentStatus != nil {
		paymentChanged, setErr := o.SetPaymentStatus(*patch.PaymentStatus)
		if setErr != nil {
			return setErr
		}
		changed = changed || paymentChanged
	}
	if !changed {
		return nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// checkUniformType loads every order of the batch and refuses mixed types up front.
// Unknown ids are left for the per-order pass to report.
func (h *BulkUpdateOrdersCommandHandler) checkUniformType(ctx context.Context, ids []int64) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		o, err := orderRepo.Get(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return err
		}
		orders = append(orders, o)
	}

	return services.CheckUniformType(orders)
}
