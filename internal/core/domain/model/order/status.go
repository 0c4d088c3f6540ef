package order

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// Status represents the workflow state of a catering order.
//
// State workflow (forward path):
//
//	quote_pending ──> quote_sent ──> awaiting_vendor_quote ──> awaiting_vendor_confirmation
//	    ──> vendor_confirmed ──> awaiting_client_confirmation ──> client_confirmed
//	    ──> out_for_delivery ──> completed
//
// Any non-terminal state may also end in cancelled_not_billable or cancelled_billable.
// Which moves are legal for a given order type is decided by a TransitionTable, not by
// Status itself. Completed and both cancellations are terminal.
type Status int

const (
	// UnknownStatus catches uninitialized Status values.
	UnknownStatus Status = iota

	// QuotePending is the initial status of every new order.
	QuotePending
	QuoteSent
	AwaitingVendorQuote
	AwaitingVendorConfirmation
	VendorConfirmed
	AwaitingClientConfirmation
	ClientConfirmed
	OutForDelivery

	// Completed, CancelledNotBillable and CancelledBillable are terminal.
	Completed
	CancelledNotBillable
	CancelledBillable
)

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		QuotePending:               "quote_pending",
		QuoteSent:                  "quote_sent",
		AwaitingVendorQuote:        "awaiting_vendor_quote",
		AwaitingVendorConfirmation: "awaiting_vendor_confirmation",
		VendorConfirmed:            "vendor_confirmed",
		AwaitingClientConfirmation: "awaiting_client_confirmation",
		ClientConfirmed:            "client_confirmed",
		OutForDelivery:             "out_for_delivery",
		Completed:                  "completed",
		CancelledNotBillable:       "cancelled_not_billable",
		CancelledBillable:          "cancelled_billable",
	}
}

// AllStatuses returns every valid status in workflow order.
func AllStatuses() []Status {
	return []Status{
		QuotePending,
		QuoteSent,
		AwaitingVendorQuote,
		AwaitingVendorConfirmation,
		VendorConfirmed,
		AwaitingClientConfirmation,
		ClientConfirmed,
		OutForDelivery,
		Completed,
		CancelledNotBillable,
		CancelledBillable,
	}
}

// ParseStatus converts the persisted string form (e.g. "quote_sent") into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate rejects UnknownStatus and any value outside the enum.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible from s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == CancelledNotBillable || s == CancelledBillable
}

// RequiresFulfilmentAssignment reports whether reaching s needs a caterer and a
// delivery airport on orders whose type carries them.
func (s Status) RequiresFulfilmentAssignment() bool {
	return s == OutForDelivery || s == Completed
}
