// Package stockrepo persists stock items in the stock_inventories table.
package stockrepo

import (
	"time"

	"catering/internal/core/domain/model/stock"

	"github.com/shopspring/decimal"
)

// StockItemDTO represents the stock_inventories table. Quantities and money are
// stored as numeric(12,2) to match the two-decimal domain arithmetic.
type StockItemDTO struct {
	ID                int64           `gorm:"primaryKey;autoIncrement"`
	Name              string          `gorm:"size:255;not null"`
	Unit              string          `gorm:"size:32;not null"`
	Quantity          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	UnitCost          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalValue        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MinimumQuantity   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ExpiryDate        *time.Time
	LastRestockedDate *time.Time
	IsActive          bool `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StockItemDTO) TableName() string {
	return "stock_inventories"
}

func fromDomain(item *stock.StockItem) StockItemDTO {
	return StockItemDTO{
		ID:                item.ID(),
		Name:              item.Name(),
		Unit:              item.Unit(),
		Quantity:          item.Quantity(),
		UnitCost:          item.UnitCost(),
		TotalValue:        item.TotalValue(),
		MinimumQuantity:   item.MinimumQuantity(),
		ExpiryDate:        item.ExpiryDate(),
		LastRestockedDate: item.LastRestockedDate(),
		IsActive:          item.IsActive(),
	}
}

func toDomain(dto StockItemDTO) (*stock.StockItem, error) {
	return stock.RestoreStockItem(stock.Snapshot{
		ID:                dto.ID,
		Name:              dto.Name,
		Unit:              dto.Unit,
		Quantity:          dto.Quantity,
		UnitCost:          dto.UnitCost,
		MinimumQuantity:   dto.MinimumQuantity,
		ExpiryDate:        dto.ExpiryDate,
		LastRestockedDate: dto.LastRestockedDate,
		IsActive:          dto.IsActive,
	})
}
