package commands

import (
	"context"

	"catering/internal/core/domain/model/stock"
)

// UpdateStockItemCommandHandler applies a manual adjustment under a row lock and
// returns the resulting valuation.
type UpdateStockItemCommandHandler struct {
	uowFactory StockUoWFactory
}

func NewUpdateStockItemCommandHandler(uowFactory StockUoWFactory) UpdateStockItemCommandHandler {
	return UpdateStockItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateStockItemCommandHandler) Handle(ctx context.Context, cmd UpdateStockItemCommand) (stock.Valuation, error) {
	if err := cmd.Validate(); err != nil {
		return stock.Valuation{}, err
	}

	var valuation stock.Valuation
	err := retryTx(ctx, 1, func() error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		stockRepo := uow.StockItemRepository()
		item, err := stockRepo.GetForUpdate(ctx, cmd.StockItemID())
		if err != nil {
			return err
		}

		if !cmd.Patch().IsEmpty() {
			if err = item.Update(cmd.Patch()); err != nil {
				return err
			}
		}
		if active := cmd.Active(); active != nil {
			if *active {
				item.Activate()
			} else {
				item.Deactivate()
			}
		}

		if err = stockRepo.Update(ctx, item); err != nil {
			return err
		}

		if err = uow.Commit(ctx); err != nil {
			return err
		}

		valuation = item.Valuation()
		return nil
	})
	if err != nil {
		return stock.Valuation{}, err
	}

	return valuation, nil
}
