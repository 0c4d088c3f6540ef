package order

import (
	"errors"
	"fmt"
	"slices"

	"catering/internal/pkg/errs"
)

// Rules maps an order type and a current status to the statuses it may move to.
type Rules map[Type]map[Status][]Status

// TransitionTable is the single, data-driven source of workflow legality:
// (order type, current status) -> allowed next statuses.
// The zero value allows nothing.
type TransitionTable struct {
	rules Rules
}

// NewTransitionTable validates and copies rules. Every type, source and target must be
// a valid enum value, a status may not list itself, and terminal statuses may not
// have outgoing transitions.
func NewTransitionTable(rules Rules) (TransitionTable, error) {
	copied := make(Rules, len(rules))
	var problems []error

	for orderType, byStatus := range rules {
		if err := orderType.Validate(); err != nil {
			problems = append(problems, err)
			continue
		}

		copied[orderType] = make(map[Status][]Status, len(byStatus))
		for from, targets := range byStatus {
			if err := from.Validate(); err != nil {
				problems = append(problems, err)
				continue
			}
			if from.IsTerminal() && len(targets) > 0 {
				problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
					"transition table is invalid",
					fmt.Errorf("terminal status %s has outgoing transitions for %s", from, orderType),
				))
				continue
			}

			for _, to := range targets {
				if err := to.Validate(); err != nil {
					problems = append(problems, err)
				}
				if to == from {
					problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
						"transition table is invalid",
						fmt.Errorf("%s lists itself as a target for %s", from, orderType),
					))
				}
			}
			copied[orderType][from] = slices.Clone(targets)
		}
	}

	if err := errors.Join(problems...); err != nil {
		return TransitionTable{}, err
	}
	return TransitionTable{rules: copied}, nil
}

// PermissiveTransitionTable mirrors the legacy admin behaviour: every non-terminal
// status may move to any other status, identically for all order types.
func PermissiveTransitionTable() TransitionTable {
	rules := make(Rules)
	for _, orderType := range AllTypes() {
		rules[orderType] = make(map[Status][]Status)
		for _, from := range AllStatuses() {
			if from.IsTerminal() {
				continue
			}
			for _, to := range AllStatuses() {
				if to != from {
					rules[orderType][from] = append(rules[orderType][from], to)
				}
			}
		}
	}
	return TransitionTable{rules: rules}
}

// StrictTransitionTable allows only the forward workflow plus cancellation from any
// non-terminal status. Orders that are delivered (delivery, qe_serv_hub) pass through
// out_for_delivery; dine_in and pickup complete straight from client_confirmed.
func StrictTransitionTable() TransitionTable {
	forward := []Status{
		QuotePending,
		QuoteSent,
		AwaitingVendorQuote,
		AwaitingVendorConfirmation,
		VendorConfirmed,
		AwaitingClientConfirmation,
		ClientConfirmed,
	}

	rules := make(Rules)
	for _, orderType := range AllTypes() {
		byStatus := make(map[Status][]Status)
		for i := 0; i < len(forward)-1; i++ {
			byStatus[forward[i]] = []Status{forward[i+1]}
		}

		if orderType == Delivery || orderType == QEServHub {
			byStatus[ClientConfirmed] = []Status{OutForDelivery}
			byStatus[OutForDelivery] = []Status{Completed}
		} else {
			byStatus[ClientConfirmed] = []Status{Completed}
		}

		for from := range byStatus {
			byStatus[from] = append(byStatus[from], CancelledNotBillable, CancelledBillable)
		}
		rules[orderType] = byStatus
	}
	return TransitionTable{rules: rules}
}

// Allowed returns the statuses an order of orderType may move to from current,
// in workflow order. Terminal statuses always yield an empty list.
func (t TransitionTable) Allowed(orderType Type, current Status) []Status {
	if current.IsTerminal() {
		return []Status{}
	}

	targets := t.rules[orderType][current]
	allowed := make([]Status, 0, len(targets))
	for _, status := range AllStatuses() {
		if slices.Contains(targets, status) {
			allowed = append(allowed, status)
		}
	}
	return allowed
}

// IsAllowed reports whether from -> to is legal for orderType.
func (t TransitionTable) IsAllowed(orderType Type, from, to Status) bool {
	if from.IsTerminal() {
		return false
	}
	return slices.Contains(t.rules[orderType][from], to)
}
