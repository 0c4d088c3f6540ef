package queries

import (
	"context"

	"catering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler reads open orders, oldest first.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			type,
			status,
			payment_status
		FROM orders
		WHERE status NOT IN ?
		ORDER BY id
	`, terminalStatusNames()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp                             GetUncompletedOrdersQueryResponse
			orderType, status, paymentStatus string
		)
		if err = rows.Scan(&resp.ID, &resp.Number, &orderType, &status, &paymentStatus); err != nil {
			return nil, err
		}

		if resp.Type, err = order.ParseType(orderType); err != nil {
			return nil, err
		}
		if resp.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if resp.PaymentStatus, err = order.ParsePaymentStatus(paymentStatus); err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func terminalStatusNames() []string {
	names := make([]string, 0, 3)
	for _, status := range order.AllStatuses() {
		if status.IsTerminal() {
			names = append(names, status.String())
		}
	}
	return names
}
