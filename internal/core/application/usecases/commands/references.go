package commands

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// checkFulfilmentReferences verifies that the caterer and the airport exist.
func checkFulfilmentReferences(ctx context.Context, lookup ports.ReferenceDataLookup, catererID, airportID int64) error {
	exists, err := lookup.CatererExists(ctx, catererID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("caterer", catererID)
	}

	exists, err = lookup.AirportExists(ctx, airportID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("airport", airportID)
	}
	return nil
}

// transitionOrder is the status change shared by the single and the bulk handlers.
// Before a move that depends on the fulfilment assignment it checks that the assigned
// caterer and airport still exist; the workflow decides the rest.
func transitionOrder(
	ctx context.Context,
	lookup ports.ReferenceDataLookup,
	workflow services.OrderWorkflow,
	o *order.Order,
	target order.Status,
) (order.StatusChanged, error) {
	if o.Type().RequiresFulfilmentAssignment() &&
		target.RequiresFulfilmentAssignment() &&
		o.HasFulfilmentAssignment() {
		err := checkFulfilmentReferences(ctx, lookup, *o.CatererID(), *o.AirportID())
		if errs.IsExpected(err) {
			return order.StatusChanged{}, errs.NewPreconditionFailedErrorWithCause(
				fmt.Sprintf("order %s cannot move to %s", o.Number(), target), err,
			)
		}
		if err != nil {
			return order.StatusChanged{}, err
		}
	}

	return workflow.Transition(o, target)
}
