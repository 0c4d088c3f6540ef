package commands

import (
	"errors"

	"catering/internal/pkg/guard"
)

var ErrAssignCatererCommandIsNotConstructed = errors.New(
	"AssignCatererCommand must be created via NewAssignCatererCommand constructor",
)

// AssignCatererCommand assigns the caterer fulfilling an order and its delivery airport.
type AssignCatererCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	catererID int64
	airportID int64

	guard guard.ConstructorGuard
}

func NewAssignCatererCommand(orderID, catererID, airportID int64) (AssignCatererCommand, error) {
	if err := errors.Join(
		validateID("order id", orderID),
		validateID("caterer id", catererID),
		validateID("airport id", airportID),
	); err != nil {
		return AssignCatererCommand{}, err
	}

	return AssignCatererCommand{
		orderID:   orderID,
		catererID: catererID,
		airportID: airportID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignCatererCommand) Validate() error {
	return c.guard.Validate(ErrAssignCatererCommandIsNotConstructed)
}

func (c AssignCatererCommand) OrderID() int64 {
	return c.orderID
}

func (c AssignCatererCommand) CatererID() int64 {
	return c.catererID
}

func (c AssignCatererCommand) AirportID() int64 {
	return c.airportID
}
