package commands

import (
	"context"
	"time"

	"catering/internal/core/domain/model/stock"
)

// RestockStockItemCommandHandler performs the read-compute-write of a restock while
// holding the item's row lock, so two simultaneous restocks of one item both count.
//
// Example:
//
//	handler := NewRestockStockItemCommandHandler(uowFactory, time.Now)
//	cost := decimal.NewFromInt(7)
//	cmd, _ := NewRestockStockItemCommand(itemID, decimal.NewFromInt(10), &cost)
//
//	valuation, err := handler.Handle(ctx, cmd)
//	// 10 @ 5.00 restocked with 10 @ 7.00 -> 20 @ 6.00, total 120.00
type RestockStockItemCommandHandler struct {
	uowFactory StockUoWFactory
	now        func() time.Time
}

func NewRestockStockItemCommandHandler(uowFactory StockUoWFactory, now func() time.Time) RestockStockItemCommandHandler {
	if now == nil {
		now = time.Now
	}
	return RestockStockItemCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

func (h *RestockStockItemCommandHandler) Handle(ctx context.Context, cmd RestockStockItemCommand) (stock.Valuation, error) {
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

		if err = item.Restock(cmd.AddQuantity(), cmd.NewUnitCost(), h.now()); err != nil {
			return err
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
