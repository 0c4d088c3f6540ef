package queries

import (
	"context"

	"catering/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetStockValuationQueryHandler struct {
	db *gorm.DB
}

func NewGetStockValuationQueryHandler(db *gorm.DB) GetStockValuationQueryHandler {
	return GetStockValuationQueryHandler{db: db}
}

func (h GetStockValuationQueryHandler) Handle(
	ctx context.Context,
	query GetStockValuationQuery,
) (GetStockValuationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockValuationQueryResponse{}, err
	}

	resp := GetStockValuationQueryResponse{
		Lines: make([]StockValuationLine, 0),
		Total: decimal.Zero,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			unit,
			quantity,
			unit_cost,
			total_value,
			is_active
		FROM stock_inventories
		WHERE is_active OR ?
		ORDER BY name, id
	`, query.IncludeInactive()).Rows()
	if err != nil {
		return GetStockValuationQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line StockValuationLine
		err = rows.Scan(
			&line.ID,
			&line.Name,
			&line.Unit,
			&line.Quantity,
			&line.UnitCost,
			&line.TotalValue,
			&line.IsActive,
		)
		if err != nil {
			return GetStockValuationQueryResponse{}, err
		}
		resp.Lines = append(resp.Lines, line)
		resp.Total = resp.Total.Add(line.TotalValue)
	}

	if err = rows.Err(); err != nil {
		return GetStockValuationQueryResponse{}, err
	}

	resp.Total = kernel.Round(resp.Total)
	return resp, nil
}
