package queries

import (
	"errors"
	"time"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetStockAlertsQueryIsNotConstructed = errors.New(
	"GetStockAlertsQuery must be created via NewGetStockAlertsQuery constructor",
)

// GetStockAlertsQuery finds active stock items that are below their minimum quantity
// or expire within horizon of now.
type GetStockAlertsQuery struct {
	now     time.Time
	horizon time.Duration

	guard guard.ConstructorGuard
}

func NewGetStockAlertsQuery(now time.Time, horizon time.Duration) (GetStockAlertsQuery, error) {
	if now.IsZero() {
		return GetStockAlertsQuery{}, errs.NewValueIsRequiredError("now")
	}
	if horizon < 0 {
		return GetStockAlertsQuery{}, errs.NewValueIsOutOfRangeError("horizon", horizon, 0, "unbounded")
	}
	return GetStockAlertsQuery{now: now.UTC(), horizon: horizon, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStockAlertsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockAlertsQueryIsNotConstructed)
}

func (q GetStockAlertsQuery) Now() time.Time {
	return q.now
}

// ExpiryCutoff is the latest expiry date that still raises an alert.
func (q GetStockAlertsQuery) ExpiryCutoff() time.Time {
	return q.now.Add(q.horizon)
}

type GetStockAlertsQueryResponse struct {
	ID              int64
	Name            string
	Unit            string
	Quantity        decimal.Decimal
	MinimumQuantity decimal.Decimal
	ExpiryDate      *time.Time
	BelowMinimum    bool
	Expiring        bool
}
