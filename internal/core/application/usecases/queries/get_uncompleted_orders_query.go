package queries

import (
	"errors"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/guard"
)

var (
	ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
		"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
	)
)

// GetUncompletedOrdersQuery lists every order that has not reached a terminal status.
// This is the candidate list staff pick from for bulk actions.
//
// Example:
//
//	query := NewGetUncompletedOrdersQuery()
//	handler := NewGetUncompletedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s %s\n", o.Number, o.Type, o.Status)
//	}
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

type GetUncompletedOrdersQueryResponse struct {
	ID            int64
	Number        string
	Type          order.Type
	Status        order.Status
	PaymentStatus order.PaymentStatus
}
