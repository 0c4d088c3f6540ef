package order

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a catering order. It owns the workflow status, the
// independent payment status, the monetary snapshot and the fulfilment associations.
//
// Order follows these invariants:
//   - Number is always present and well formed
//   - A new order starts in QuotePending and Unpaid with revision 0
//   - Terminal orders admit no status transition and no reassignment
//   - A delivery order cannot go out for delivery or complete without a caterer
//     and a delivery airport
//
// The database assigns the integer id; it is zero until Identify is called.
type Order struct {
	id            int64
	number        Number
	orderType     Type
	status        Status
	paymentStatus PaymentStatus
	paymentType   string
	amounts       Amounts
	revision      int

	customerID *int64
	catererID  *int64
	airportID  *int64

	domainEvents []StatusChanged

	guard guard.ConstructorGuard
}

// Snapshot carries the persisted state of an order into RestoreOrder.
type Snapshot struct {
	ID            int64
	Number        Number
	Type          Type
	Status        Status
	PaymentStatus PaymentStatus
	PaymentType   string
	Amounts       Amounts
	Revision      int
	CustomerID    *int64
	CatererID     *int64
	AirportID     *int64
}

// NewOrder creates an order that has just been numbered. The order starts at
// QuotePending, Unpaid and revision 0.
//
// Example:
//
//	number, _ := order.NewNumber("KA", 1)
//	o, err := order.NewOrder(number, order.Delivery, "invoice", order.Amounts{})
//	if err != nil {
//	    // invalid type or negative amount
//	}
func NewOrder(number Number, orderType Type, paymentType string, amounts Amounts) (*Order, error) {
	o := &Order{
		status:        QuotePending,
		paymentStatus: Unpaid,
		paymentType:   paymentType,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setType(orderType),
		o.setAmounts(amounts),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. It validates the stored
// values but applies no workflow rules and records no events.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		id:          s.ID,
		paymentType: s.PaymentType,
		customerID:  s.CustomerID,
		catererID:   s.CatererID,
		airportID:   s.AirportID,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setNumber(s.Number),
		o.setType(s.Type),
		o.setStatus(s.Status),
		o.setPaymentStatus(s.PaymentStatus),
		o.setAmounts(s.Amounts),
		o.setRevision(s.Revision),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by one of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Number() Number {
	return o.number
}

func (o *Order) Type() Type {
	return o.orderType
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) PaymentType() string {
	return o.paymentType
}

func (o *Order) Amounts() Amounts {
	return o.amounts
}

func (o *Order) Revision() int {
	return o.revision
}

// CustomerID returns nil when no customer is attached.
func (o *Order) CustomerID() *int64 {
	return o.customerID
}

// CatererID returns nil when no caterer is assigned.
func (o *Order) CatererID() *int64 {
	return o.catererID
}

// AirportID returns nil when no delivery airport is assigned.
func (o *Order) AirportID() *int64 {
	return o.airportID
}

// HasFulfilmentAssignment reports whether both a caterer and a delivery airport are set.
func (o *Order) HasFulfilmentAssignment() bool {
	return o.catererID != nil && o.airportID != nil
}

// Identify stores the id assigned by the database on first insert.
func (o *Order) Identify(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("order id", id, 1, "unbounded")
	}
	if o.id != 0 && o.id != id {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("order %s already has id %d", o.number, o.id),
		)
	}
	o.id = id
	return nil
}

// AttachCustomer links the order to a customer record.
func (o *Order) AttachCustomer(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsOutOfRangeError("customer id", customerID, 1, "unbounded")
	}
	o.customerID = &customerID
	return nil
}

// AssignCaterer sets the caterer fulfilling the order and the airport it delivers to.
// Callers are expected to have checked that both exist.
func (o *Order) AssignCaterer(catererID, airportID int64) error {
	if o.status.IsTerminal() {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("order %s is %s and can no longer be reassigned", o.number, o.status),
		)
	}
	if err := errors.Join(
		positiveID("caterer id", catererID),
		positiveID("airport id", airportID),
	); err != nil {
		return err
	}

	o.catererID = &catererID
	o.airportID = &airportID
	return nil
}

// IssueRevision counts one more re-issue of a vendor or client facing document.
func (o *Order) IssueRevision() int {
	o.revision++
	return o.revision
}

// SetPaymentStatus changes the payment status in any direction, independently of the
// workflow status. It reports whether the value actually changed.
func (o *Order) SetPaymentStatus(ps PaymentStatus) (bool, error) {
	if err := ps.Validate(); err != nil {
		return false, err
	}
	if o.paymentStatus == ps {
		return false, nil
	}
	o.paymentStatus = ps
	return true, nil
}

// Transition moves the order to target if table allows it for the order's type.
// Every refusal is a PreconditionFailedError. On success a StatusChanged event is
// recorded on the order and returned.
func (o *Order) Transition(target Status, table TransitionTable, now time.Time) (StatusChanged, error) {
	if err := target.Validate(); err != nil {
		return StatusChanged{}, err
	}

	switch {
	case o.status.IsTerminal():
		return StatusChanged{}, errs.NewPreconditionFailedError(
			fmt.Sprintf("order %s is %s, a terminal status", o.number, o.status),
		)
	case target == o.status:
		return StatusChanged{}, errs.NewPreconditionFailedError(
			fmt.Sprintf("order %s is already %s", o.number, o.status),
		)
	case !table.IsAllowed(o.orderType, o.status, target):
		return StatusChanged{}, errs.NewPreconditionFailedError(
			fmt.Sprintf("%s order %s cannot move from %s to %s", o.orderType, o.number, o.status, target),
		)
	case o.orderType.RequiresFulfilmentAssignment() &&
		target.RequiresFulfilmentAssignment() &&
		!o.HasFulfilmentAssignment():
		return StatusChanged{}, errs.NewPreconditionFailedError(
			fmt.Sprintf("order %s needs a caterer and a delivery airport before %s", o.number, target),
		)
	}

	event := StatusChanged{
		EventID:     kernel.NewUUID(),
		OrderID:     o.id,
		OrderNumber: o.number.String(),
		Previous:    o.status,
		New:         target,
		OccurredAt:  now.UTC(),
	}
	o.status = target
	o.domainEvents = append(o.domainEvents, event)
	return event, nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChanged {
	return o.domainEvents
}

func (o *Order) ClearDomainEvents() {
	o.domainEvents = nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(ps PaymentStatus) error {
	if err := ps.Validate(); err != nil {
		return err
	}
	o.paymentStatus = ps
	return nil
}

func (o *Order) setAmounts(amounts Amounts) error {
	checked, err := NewAmounts(amounts)
	if err != nil {
		return err
	}
	o.amounts = checked
	return nil
}

func (o *Order) setRevision(revision int) error {
	if revision < 0 {
		return errs.NewValueIsOutOfRangeError("revision", revision, 0, "unbounded")
	}
	o.revision = revision
	return nil
}

func positiveID(name string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError(name, id, 1, "unbounded")
	}
	return nil
}
