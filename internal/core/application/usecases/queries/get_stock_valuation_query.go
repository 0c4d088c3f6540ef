package queries

import (
	"errors"

	"catering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetStockValuationQueryIsNotConstructed = errors.New(
	"GetStockValuationQuery must be created via NewGetStockValuationQuery constructor",
)

type GetStockValuationQuery struct {
	includeInactive bool

	guard guard.ConstructorGuard
}

func NewGetStockValuationQuery(includeInactive bool) GetStockValuationQuery {
	return GetStockValuationQuery{includeInactive: includeInactive, guard: guard.NewConstructorGuard()}
}

func (q GetStockValuationQuery) Validate() error {
	return q.guard.Validate(ErrGetStockValuationQueryIsNotConstructed)
}

func (q GetStockValuationQuery) IncludeInactive() bool {
	return q.includeInactive
}

type StockValuationLine struct {
	ID         int64
	Name       string
	Unit       string
	Quantity   decimal.Decimal
	UnitCost   decimal.Decimal
	TotalValue decimal.Decimal
	IsActive   bool
}

// GetStockValuationQueryResponse carries per-item values and their sum.
type GetStockValuationQueryResponse struct {
	Lines []StockValuationLine
	Total decimal.Decimal
}
