package stock

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	ErrUnitIsRequired = errs.NewValueIsRequiredError("unit")

	// ErrStockItemIsNotConstructed is returned when a StockItem was not built by
	// NewStockItem or RestoreStockItem.
	ErrStockItemIsNotConstructed = errors.New("StockItem must be created via NewStockItem constructor")
)

// StockItem is an inventory line (ingredient, packaging, consumable) valued at
// weighted-average cost. Its valuation is only ever replaced through the pure
// functions of this package, so the total value invariant holds after every mutation.
// Quantity is never decremented automatically.
type StockItem struct {
	id                int64
	name              string
	unit              string
	valuation         Valuation
	minimumQuantity   decimal.Decimal
	expiryDate        *time.Time
	lastRestockedDate *time.Time
	isActive          bool

	guard guard.ConstructorGuard
}

// Snapshot carries the persisted state of a stock item into RestoreStockItem.
type Snapshot struct {
	ID                int64
	Name              string
	Unit              string
	Quantity          decimal.Decimal
	UnitCost          decimal.Decimal
	MinimumQuantity   decimal.Decimal
	ExpiryDate        *time.Time
	LastRestockedDate *time.Time
	IsActive          bool
}

// Patch lists the fields an adjustment changes. Nil fields are kept.
type Patch struct {
	Name            *string
	Unit            *string
	Quantity        *decimal.Decimal
	UnitCost        *decimal.Decimal
	MinimumQuantity *decimal.Decimal
	ExpiryDate      *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Unit == nil && p.Quantity == nil &&
		p.UnitCost == nil && p.MinimumQuantity == nil && p.ExpiryDate == nil
}

// NewStockItem creates an active stock item.
func NewStockItem(
	name, unit string,
	quantity, unitCost, minimumQuantity decimal.Decimal,
	expiryDate *time.Time,
) (*StockItem, error) {
	item := &StockItem{
		isActive:   true,
		expiryDate: expiryDate,
		guard:      guard.NewConstructorGuard(),
	}

	valuation, errValuation := Create(quantity, unitCost)
	if err := errors.Join(
		item.setName(name),
		item.setUnit(unit),
		item.setMinimumQuantity(minimumQuantity),
		errValuation,
	); err != nil {
		return nil, err
	}
	item.valuation = valuation

	return item, nil
}

// RestoreStockItem reconstructs a StockItem from persistence. The total value is
// recomputed from quantity and unit cost rather than trusted.
func RestoreStockItem(s Snapshot) (*StockItem, error) {
	item := &StockItem{
		id:                s.ID,
		expiryDate:        s.ExpiryDate,
		lastRestockedDate: s.LastRestockedDate,
		isActive:          s.IsActive,
		guard:             guard.NewConstructorGuard(),
	}

	valuation, errValuation := Create(s.Quantity, s.UnitCost)
	if err := errors.Join(
		item.setName(s.Name),
		item.setUnit(s.Unit),
		item.setMinimumQuantity(s.MinimumQuantity),
		errValuation,
	); err != nil {
		return nil, err
	}
	item.valuation = valuation

	return item, nil
}

func (s *StockItem) Validate() error {
	if s == nil {
		return ErrStockItemIsNotConstructed
	}
	return s.guard.Validate(ErrStockItemIsNotConstructed)
}

func (s *StockItem) ID() int64 {
	return s.id
}

func (s *StockItem) Name() string {
	return s.name
}

func (s *StockItem) Unit() string {
	return s.unit
}

func (s *StockItem) Valuation() Valuation {
	return s.valuation
}

func (s *StockItem) Quantity() decimal.Decimal {
	return s.valuation.Quantity
}

func (s *StockItem) UnitCost() decimal.Decimal {
	return s.valuation.UnitCost
}

func (s *StockItem) TotalValue() decimal.Decimal {
	return s.valuation.TotalValue
}

func (s *StockItem) MinimumQuantity() decimal.Decimal {
	return s.minimumQuantity
}

func (s *StockItem) ExpiryDate() *time.Time {
	return s.expiryDate
}

func (s *StockItem) LastRestockedDate() *time.Time {
	return s.lastRestockedDate
}

func (s *StockItem) IsActive() bool {
	return s.isActive
}

// Identify stores the id assigned by the database on first insert.
func (s *StockItem) Identify(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("stock item id", id, 1, "unbounded")
	}
	if s.id != 0 && s.id != id {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock item id",
			fmt.Errorf("stock item %q already has id %d", s.name, s.id),
		)
	}
	s.id = id
	return nil
}

// Update applies a manual adjustment. Either all fields of the patch are applied or none.
func (s *StockItem) Update(p Patch) error {
	if p.IsEmpty() {
		return errs.NewValueIsRequiredError("stock item patch")
	}

	next := *s
	var errName, errUnit, errMinimum error
	if p.Name != nil {
		errName = next.setName(*p.Name)
	}
	if p.Unit != nil {
		errUnit = next.setUnit(*p.Unit)
	}
	if p.MinimumQuantity != nil {
		errMinimum = next.setMinimumQuantity(*p.MinimumQuantity)
	}
	if p.ExpiryDate != nil {
		expiry := *p.ExpiryDate
		next.expiryDate = &expiry
	}
	valuation, errValuation := Update(s.valuation, p.Quantity, p.UnitCost)

	if err := errors.Join(errName, errUnit, errMinimum, errValuation); err != nil {
		return err
	}
	next.valuation = valuation
	*s = next
	return nil
}

// Restock books a delivery of addQuantity, blending newUnitCost into the unit cost
// when it is positive, and stamps the restock date. Inactive items cannot be restocked.
func (s *StockItem) Restock(addQuantity decimal.Decimal, newUnitCost *decimal.Decimal, now time.Time) error {
	if !s.isActive {
		return errs.NewPreconditionFailedError(fmt.Sprintf("stock item %q is inactive", s.name))
	}

	valuation, err := Restock(s.valuation, addQuantity, newUnitCost)
	if err != nil {
		return err
	}

	restockedAt := now.UTC()
	s.valuation = valuation
	s.lastRestockedDate = &restockedAt
	return nil
}

// IsBelowMinimum reports whether the item should be reordered.
func (s *StockItem) IsBelowMinimum() bool {
	return s.valuation.Quantity.LessThan(s.minimumQuantity)
}

// ExpiresWithin reports whether the item has an expiry date at or before now+horizon.
// Already expired items count.
func (s *StockItem) ExpiresWithin(now time.Time, horizon time.Duration) bool {
	return s.expiryDate != nil && !s.expiryDate.After(now.Add(horizon))
}

func (s *StockItem) Activate() {
	s.isActive = true
}

func (s *StockItem) Deactivate() {
	s.isActive = false
}

func (s *StockItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *StockItem) setUnit(unit string) error {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return ErrUnitIsRequired
	}
	s.unit = unit
	return nil
}

func (s *StockItem) setMinimumQuantity(minimum decimal.Decimal) error {
	rounded, err := kernel.NonNegative("minimum quantity", minimum)
	if err != nil {
		return err
	}
	s.minimumQuantity = rounded
	return nil
}
