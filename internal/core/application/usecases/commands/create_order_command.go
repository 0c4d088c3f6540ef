package commands

import (
	"errors"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new catering order.
// The order number is allocated by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("KA", order.Delivery, "invoice", amounts)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	cmd = cmd.WithCaterer(catererID, airportID)
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	prefix      string
	orderType   order.Type
	paymentType string
	amounts     order.Amounts

	customerID *int64
	catererID  *int64
	airportID  *int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand normalizes the prefix and validates the type and amounts.
func NewCreateOrderCommand(
	prefix string,
	orderType order.Type,
	paymentType string,
	amounts order.Amounts,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		paymentType: paymentType,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrefix(prefix),
		cmd.setOrderType(orderType),
		cmd.setAmounts(amounts),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// WithCustomer returns a copy of the command that attaches the order to a customer.
func (c CreateOrderCommand) WithCustomer(customerID int64) CreateOrderCommand {
	c.customerID = &customerID
	return c
}

// WithCaterer returns a copy of the command that assigns a caterer and delivery airport.
func (c CreateOrderCommand) WithCaterer(catererID, airportID int64) CreateOrderCommand {
	c.catererID = &catererID
	c.airportID = &airportID
	return c
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Prefix() string {
	return c.prefix
}

func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

func (c CreateOrderCommand) PaymentType() string {
	return c.paymentType
}

func (c CreateOrderCommand) Amounts() order.Amounts {
	return c.amounts
}

func (c CreateOrderCommand) CustomerID() *int64 {
	return c.customerID
}

func (c CreateOrderCommand) CatererID() *int64 {
	return c.catererID
}

func (c CreateOrderCommand) AirportID() *int64 {
	return c.airportID
}

func (c *CreateOrderCommand) setPrefix(prefix string) error {
	normalized, err := order.NormalizePrefix(prefix)
	if err != nil {
		return err
	}
	c.prefix = normalized
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setAmounts(amounts order.Amounts) error {
	checked, err := order.NewAmounts(amounts)
	if err != nil {
		return err
	}
	c.amounts = checked
	return nil
}
