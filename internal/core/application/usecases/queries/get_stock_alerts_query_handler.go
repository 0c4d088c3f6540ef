package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type GetStockAlertsQueryHandler struct {
	db *gorm.DB
}

func NewGetStockAlertsQueryHandler(db *gorm.DB) GetStockAlertsQueryHandler {
	return GetStockAlertsQueryHandler{db: db}
}

func (h GetStockAlertsQueryHandler) Handle(
	ctx context.Context,
	query GetStockAlertsQuery,
) ([]GetStockAlertsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	alerts := make([]GetStockAlertsQueryResponse, 0)

	cutoff := query.ExpiryCutoff()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			unit,
			quantity,
			minimum_quantity,
			expiry_date,
			quantity < minimum_quantity AS below_minimum,
			(expiry_date IS NOT NULL AND expiry_date <= ?) AS expiring
		FROM stock_inventories
		WHERE is_active
			AND (quantity < minimum_quantity OR (expiry_date IS NOT NULL AND expiry_date <= ?))
		ORDER BY name, id
	`, cutoff, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			alert  GetStockAlertsQueryResponse
			expiry sql.NullTime
		)
		err = rows.Scan(
			&alert.ID,
			&alert.Name,
			&alert.Unit,
			&alert.Quantity,
			&alert.MinimumQuantity,
			&expiry,
			&alert.BelowMinimum,
			&alert.Expiring,
		)
		if err != nil {
			return nil, err
		}
		if expiry.Valid {
			t := expiry.Time.UTC()
			alert.ExpiryDate = &t
		}
		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return alerts, nil
}
