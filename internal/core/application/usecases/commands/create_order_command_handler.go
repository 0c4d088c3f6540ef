package commands

import (
	"context"

	"catering/internal/core/domain/model/order"
)

// CreateOrderResult identifies the order that was created.
type CreateOrderResult struct {
	ID     int64
	Number string
}

// CreateOrderCommandHandler allocates an order number and inserts the order in a single
// transaction. The number sequence holds a per-prefix lock until commit, so concurrent
// creations are serialized. If the insert still hits the unique constraint on the
// order number (for example after a manual insert) the whole transaction is retried.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("", order.Pickup, "card", order.Amounts{})
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// result.Number == "KA00001" on an empty table
type CreateOrderCommandHandler struct {
	uowFactory OrderCreationUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderCreationUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the order at quote_pending and returns its id and number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	var result CreateOrderResult
	err := retryTx(ctx, orderCreationAttempts, func() error {
		var err error
		result, err = h.create(ctx, cmd)
		return err
	})
	if err != nil {
		return CreateOrderResult{}, err
	}

	return result, nil
}

func (h *CreateOrderCommandHandler) create(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if cmd.CatererID() != nil {
		err := checkFulfilmentReferences(ctx, uow.ReferenceDataLookup(), *cmd.CatererID(), *cmd.AirportID())
		if err != nil {
			return CreateOrderResult{}, err
		}
	}

	number, err := uow.OrderNumberSequence().Next(ctx, cmd.Prefix())
	if err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(number, cmd.OrderType(), cmd.PaymentType(), cmd.Amounts())
	if err != nil {
		return CreateOrderResult{}, err
	}
	if cmd.CustomerID() != nil {
		if err = o.AttachCustomer(*cmd.CustomerID()); err != nil {
			return CreateOrderResult{}, err
		}
	}
	if cmd.CatererID() != nil {
		if err = o.AssignCaterer(*cmd.CatererID(), *cmd.AirportID()); err != nil {
			return CreateOrderResult{}, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{ID: o.ID(), Number: o.Number().String()}, nil
}
