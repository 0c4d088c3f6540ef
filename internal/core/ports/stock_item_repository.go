package ports

import (
	"context"

	"catering/internal/core/domain/model/stock"
)

// StockItemRepository defines the persistence contract for stock items.
type StockItemRepository interface {
	// Add inserts a new stock item and assigns its database id via Identify.
	Add(ctx context.Context, item *stock.StockItem) error

	Update(ctx context.Context, item *stock.StockItem) error

	Get(ctx context.Context, id int64) (*stock.StockItem, error)

	// GetForUpdate loads a stock item under a row lock (SELECT ... FOR UPDATE).
	// Restocks and adjustments must read through it to avoid lost updates.
	GetForUpdate(ctx context.Context, id int64) (*stock.StockItem, error)
}
