package services

import (
	"fmt"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
)

// Workflow modes accepted by TransitionTableForMode.
const (
	PermissiveMode = "permissive"
	StrictMode     = "strict"
)

// OrderWorkflow is the single place where order status changes are decided. Single
// order updates and bulk updates both go through Transition, so they always agree on
// what is legal.
//
// Example usage:
//
//	workflow := services.NewOrderWorkflow(order.StrictTransitionTable(), time.Now)
//	event, err := workflow.Transition(o, order.QuoteSent)
//	if errors.Is(err, errs.ErrPreconditionFailed) {
//	    // refused: terminal order, move not in the table, or missing caterer
//	}
type OrderWorkflow struct {
	table order.TransitionTable
	now   func() time.Time
}

// NewOrderWorkflow creates a workflow over table. now defaults to time.Now.
func NewOrderWorkflow(table order.TransitionTable, now func() time.Time) OrderWorkflow {
	if now == nil {
		now = time.Now
	}
	return OrderWorkflow{table: table, now: now}
}

// TransitionTableForMode maps a configured workflow mode to its table.
func TransitionTableForMode(mode string) (order.TransitionTable, error) {
	switch mode {
	case PermissiveMode, "":
		return order.PermissiveTransitionTable(), nil
	case StrictMode:
		return order.StrictTransitionTable(), nil
	default:
		return order.TransitionTable{}, errs.NewValueIsInvalidErrorWithCause(
			"workflow mode",
			fmt.Errorf("%q is neither %q nor %q", mode, PermissiveMode, StrictMode),
		)
	}
}

// Transition moves o to target. See order.Order.Transition for the refusals.
func (w OrderWorkflow) Transition(o *order.Order, target order.Status) (order.StatusChanged, error) {
	if err := o.Validate(); err != nil {
		return order.StatusChanged{}, err
	}
	return o.Transition(target, w.table, w.now())
}

// NextAllowedStates lists the statuses o may move to now. The list ignores the
// caterer requirement, which is checked on Transition.
func (w OrderWorkflow) NextAllowedStates(o *order.Order) []order.Status {
	return w.table.Allowed(o.Type(), o.Status())
}

// NextAllowedStatesFor lists the statuses reachable from current for orderType.
func (w OrderWorkflow) NextAllowedStatesFor(orderType order.Type, current order.Status) []order.Status {
	return w.table.Allowed(orderType, current)
}

// CheckUniformType refuses a batch whose orders are not all of the same type.
func CheckUniformType(orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	first := orders[0].Type()
	for _, o := range orders[1:] {
		if o.Type() != first {
			return errs.NewPreconditionFailedError(
				fmt.Sprintf("batch mixes %s and %s orders", first, o.Type()),
			)
		}
	}
	return nil
}
