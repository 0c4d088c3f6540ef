package queries

import (
	"errors"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one order together with the statuses it may move to next.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsOutOfRangeError("order id", orderID, 1, "unbounded")
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderQueryResponse is the read model of an order.
type GetOrderQueryResponse struct {
	ID            int64
	Number        string
	Type          order.Type
	Status        order.Status
	PaymentStatus order.PaymentStatus
	PaymentType   string
	Amounts       order.Amounts
	Revision      int
	CustomerID    *int64
	CatererID     *int64
	AirportID     *int64

	// NextAllowedStatuses is empty for terminal orders.
	NextAllowedStatuses []order.Status
}
