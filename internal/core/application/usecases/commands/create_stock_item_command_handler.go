package commands

import (
	"context"

	"catering/internal/core/domain/model/stock"
)

type CreateStockItemCommandHandler struct {
	uowFactory StockUoWFactory
}

func NewCreateStockItemCommandHandler(uowFactory StockUoWFactory) CreateStockItemCommandHandler {
	return CreateStockItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle inserts the item and returns its id.
func (h *CreateStockItemCommandHandler) Handle(ctx context.Context, cmd CreateStockItemCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := retryTx(ctx, 1, func() error {
		item, err := stock.NewStockItem(
			cmd.Name(), cmd.Unit(), cmd.Quantity(), cmd.UnitCost(), cmd.MinimumQuantity(), cmd.ExpiryDate(),
		)
		if err != nil {
			return err
		}

		uow := h.uowFactory.Create()
		if err = uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err = uow.StockItemRepository().Add(ctx, item); err != nil {
			return err
		}

		if err = uow.Commit(ctx); err != nil {
			return err
		}

		id = item.ID()
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}
