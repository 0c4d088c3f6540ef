package commands

import (
	"errors"

	"catering/internal/pkg/guard"
)

var ErrIssueRevisionCommandIsNotConstructed = errors.New(
	"IssueRevisionCommand must be created via NewIssueRevisionCommand constructor",
)

// IssueRevisionCommand records that the quote or confirmation of an order was re-issued.
type IssueRevisionCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

func NewIssueRevisionCommand(orderID int64) (IssueRevisionCommand, error) {
	if err := validateID("order id", orderID); err != nil {
		return IssueRevisionCommand{}, err
	}

	return IssueRevisionCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c IssueRevisionCommand) Validate() error {
	return c.guard.Validate(ErrIssueRevisionCommandIsNotConstructed)
}

func (c IssueRevisionCommand) OrderID() int64 {
	return c.orderID
}
