package http

import (
	"net/http"
	"strconv"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/stock"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// defaultExpiryHorizon applies when an alerts request has no horizon parameter.
const defaultExpiryHorizon = 72 * time.Hour

type NewStockItem struct {
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
	ExpiryDate      *time.Time      `json:"expiry_date"`
}

type StockItemChange struct {
	Name            *string          `json:"name"`
	Unit            *string          `json:"unit"`
	Quantity        *decimal.Decimal `json:"quantity"`
	UnitCost        *decimal.Decimal `json:"unit_cost"`
	MinimumQuantity *decimal.Decimal `json:"minimum_quantity"`
	ExpiryDate      *time.Time       `json:"expiry_date"`
	IsActive        *bool            `json:"is_active"`
}

type Restock struct {
	Quantity    decimal.Decimal  `json:"quantity"`
	NewUnitCost *decimal.Decimal `json:"new_unit_cost"`
}

type Valuation struct {
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	TotalValue decimal.Decimal `json:"total_value"`
}

type CreatedStockItem struct {
	ID int64 `json:"id"`
}

type StockAlert struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
	ExpiryDate      *time.Time      `json:"expiry_date"`
	BelowMinimum    bool            `json:"below_minimum"`
	Expiring        bool            `json:"expiring"`
}

type StockValuationLine struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	TotalValue decimal.Decimal `json:"total_value"`
	IsActive   bool            `json:"is_active"`
}

type StockValuation struct {
	Lines []StockValuationLine `json:"lines"`
	Total decimal.Decimal      `json:"total"`
}

func valuationBody(v stock.Valuation) Valuation {
	return Valuation{Quantity: v.Quantity, UnitCost: v.UnitCost, TotalValue: v.TotalValue}
}

// CreateStockItem handles POST /api/v1/stock-items.
func (s *Server) CreateStockItem(c echo.Context) error {
	var body NewStockItem
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateStockItemCommand(
		body.Name, body.Unit, body.Quantity, body.UnitCost, body.MinimumQuantity, body.ExpiryDate,
	)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.h.CreateStockItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedStockItem{ID: id})
}

// UpdateStockItem handles PATCH /api/v1/stock-items/:id.
func (s *Server) UpdateStockItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body StockItemChange
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	patch := stock.Patch{
		Name:            body.Name,
		Unit:            body.Unit,
		Quantity:        body.Quantity,
		UnitCost:        body.UnitCost,
		MinimumQuantity: body.MinimumQuantity,
		ExpiryDate:      body.ExpiryDate,
	}
	cmd, err := commands.NewUpdateStockItemCommand(id, patch, body.IsActive)
	if err != nil {
		return s.fail(c, err)
	}

	valuation, err := s.h.UpdateStockItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, valuationBody(valuation))
}

// RestockStockItem handles POST /api/v1/stock-items/:id/restock.
func (s *Server) RestockStockItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body Restock
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewRestockStockItemCommand(id, body.Quantity, body.NewUnitCost)
	if err != nil {
		return s.fail(c, err)
	}

	valuation, err := s.h.RestockStockItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, valuationBody(valuation))
}

// GetStockAlerts handles GET /api/v1/stock-items/alerts?horizon_hours=N.
func (s *Server) GetStockAlerts(c echo.Context) error {
	horizon := defaultExpiryHorizon
	if raw := c.QueryParam("horizon_hours"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "horizon_hours must be an integer")
		}
		horizon = time.Duration(hours) * time.Hour
	}

	query, err := queries.NewGetStockAlertsQuery(time.Now(), horizon)
	if err != nil {
		return s.fail(c, err)
	}

	alerts, err := s.h.GetStockAlerts.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]StockAlert, len(alerts))
	for i, a := range alerts {
		response[i] = StockAlert{
			ID:              a.ID,
			Name:            a.Name,
			Unit:            a.Unit,
			Quantity:        a.Quantity,
			MinimumQuantity: a.MinimumQuantity,
			ExpiryDate:      a.ExpiryDate,
			BelowMinimum:    a.BelowMinimum,
			Expiring:        a.Expiring,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetStockValuation handles GET /api/v1/stock-items/valuation?include_inactive=true.
func (s *Server) GetStockValuation(c echo.Context) error {
	includeInactive := false
	if raw := c.QueryParam("include_inactive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, "include_inactive must be a boolean")
		}
		includeInactive = parsed
	}

	resp, err := s.h.GetStockValuation.Handle(c.Request().Context(), queries.NewGetStockValuationQuery(includeInactive))
	if err != nil {
		return s.fail(c, err)
	}

	response := StockValuation{
		Lines: make([]StockValuationLine, len(resp.Lines)),
		Total: resp.Total,
	}
	for i, line := range resp.Lines {
		response.Lines[i] = StockValuationLine(line)
	}

	return c.JSON(http.StatusOK, response)
}
