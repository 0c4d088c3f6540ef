package http

import (
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type AmountsBody struct {
	Total          decimal.Decimal `json:"total"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	TotalCharges   decimal.Decimal `json:"total_charges"`
	Discount       decimal.Decimal `json:"discount"`
	ManualDiscount decimal.Decimal `json:"manual_discount"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	VendorCost     decimal.Decimal `json:"vendor_cost"`
}

func (b AmountsBody) toDomain() order.Amounts {
	return order.Amounts(b)
}

type NewOrder struct {
	Prefix      string      `json:"prefix"`
	Type        string      `json:"type"`
	PaymentType string      `json:"payment_type"`
	Amounts     AmountsBody `json:"amounts"`
	CustomerID  *int64      `json:"customer_id"`
	CatererID   *int64      `json:"caterer_id"`
	AirportID   *int64      `json:"airport_id"`
}

type CreatedOrder struct {
	ID     int64  `json:"id"`
	Number string `json:"order_number"`
}

type Order struct {
	ID                  int64       `json:"id"`
	Number              string      `json:"order_number"`
	Type                string      `json:"type"`
	Status              string      `json:"status"`
	PaymentStatus       string      `json:"payment_status"`
	PaymentType         string      `json:"payment_type"`
	Amounts             AmountsBody `json:"amounts"`
	Revision            int         `json:"revision"`
	CustomerID          *int64      `json:"customer_id"`
	CatererID           *int64      `json:"caterer_id"`
	AirportID           *int64      `json:"airport_id"`
	NextAllowedStatuses []string    `json:"next_allowed_statuses"`
}

type OrderSummary struct {
	ID            int64  `json:"id"`
	Number        string `json:"order_number"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type StatusChanged struct {
	OrderID  int64  `json:"order_id"`
	Previous string `json:"previous_status"`
	New      string `json:"new_status"`
}

type PaymentStatusChange struct {
	PaymentStatus string `json:"payment_status"`
}

type CatererAssignment struct {
	CatererID int64 `json:"caterer_id"`
	AirportID int64 `json:"airport_id"`
}

type Revision struct {
	Revision int `json:"revision"`
}

type BulkUpdate struct {
	IDs                []int64 `json:"ids"`
	Status             *string `json:"status"`
	PaymentStatus      *string `json:"payment_status"`
	RequireUniformType bool    `json:"require_uniform_type"`
}

type SkippedOrder struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

type BulkResult struct {
	Applied []int64        `json:"applied"`
	Skipped []SkippedOrder `json:"skipped"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	orderType, err := order.ParseType(body.Type)
	if err != nil {
		return s.fail(c, err)
	}
	prefix := body.Prefix
	if prefix == "" {
		prefix = s.defaultPrefix
	}

	cmd, err := commands.NewCreateOrderCommand(prefix, orderType, body.PaymentType, body.Amounts.toDomain())
	if err != nil {
		return s.fail(c, err)
	}
	if body.CustomerID != nil {
		cmd = cmd.WithCustomer(*body.CustomerID)
	}
	if body.CatererID != nil || body.AirportID != nil {
		if body.CatererID == nil || body.AirportID == nil {
			return badRequest(c, "caterer_id and airport_id must be given together")
		}
		cmd = cmd.WithCaterer(*body.CatererID, *body.AirportID)
	}

	result, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedOrder{ID: result.ID, Number: result.Number})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	resp, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Order{
		ID:                  resp.ID,
		Number:              resp.Number,
		Type:                resp.Type.String(),
		Status:              resp.Status.String(),
		PaymentStatus:       resp.PaymentStatus.String(),
		PaymentType:         resp.PaymentType,
		Amounts:             AmountsBody(resp.Amounts),
		Revision:            resp.Revision,
		CustomerID:          resp.CustomerID,
		CatererID:           resp.CatererID,
		AirportID:           resp.AirportID,
		NextAllowedStatuses: statusNames(resp.NextAllowedStatuses),
	})
}

// GetUncompletedOrders handles GET /api/v1/orders/active.
func (s *Server) GetUncompletedOrders(c echo.Context) error {
	orders, err := s.h.GetUncompletedOrders.Handle(c.Request().Context(), queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:            o.ID,
			Number:        o.Number,
			Type:          o.Type.String(),
			Status:        o.Status.String(),
			PaymentStatus: o.PaymentStatus.String(),
		}
	}

	return c.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/:id/status.
func (s *Server) TransitionOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body StatusChange
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(id, target)
	if err != nil {
		return s.fail(c, err)
	}
	event, err := s.h.TransitionOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, StatusChanged{
		OrderID:  event.OrderID,
		Previous: event.Previous.String(),
		New:      event.New.String(),
	})
}

// UpdatePaymentStatus handles PUT /api/v1/orders/:id/payment-status.
func (s *Server) UpdatePaymentStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body PaymentStatusChange
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	ps, err := order.ParsePaymentStatus(body.PaymentStatus)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(id, ps)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.UpdatePaymentStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignCaterer handles PUT /api/v1/orders/:id/caterer.
func (s *Server) AssignCaterer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var body CatererAssignment
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewAssignCatererCommand(id, body.CatererID, body.AirportID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.AssignCaterer.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// IssueRevision handles POST /api/v1/orders/:id/revisions.
func (s *Server) IssueRevision(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewIssueRevisionCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	revision, err := s.h.IssueRevision.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Revision{Revision: revision})
}

// BulkUpdateOrders handles POST /api/v1/orders/bulk. Rows that could not be
// changed are listed as skipped; the request itself still succeeds.
func (s *Server) BulkUpdateOrders(c echo.Context) error {
	var body BulkUpdate
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	var patch commands.BulkPatch
	if body.Status != nil {
		status, err := order.ParseStatus(*body.Status)
		if err != nil {
			return s.fail(c, err)
		}
		patch.Status = &status
	}
	if body.PaymentStatus != nil {
		ps, err := order.ParsePaymentStatus(*body.PaymentStatus)
		if err != nil {
			return s.fail(c, err)
		}
		patch.PaymentStatus = &ps
	}

	cmd, err := commands.NewBulkUpdateOrdersCommand(body.IDs, patch)
	if err != nil {
		return s.fail(c, err)
	}
	if body.RequireUniformType {
		cmd = cmd.RequiringUniformType()
	}

	result, err := s.h.BulkUpdateOrders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	response := BulkResult{
		Applied: result.Applied,
		Skipped: make([]SkippedOrder, len(result.Skipped)),
	}
	if response.Applied == nil {
		response.Applied = []int64{}
	}
	for i, skipped := range result.Skipped {
		if skipped.Reason == commands.ReasonInternal {
			s.logger.ErrorContext(c.Request().Context(), "Bulk update skipped order",
				"order_id", skipped.ID, "error", skipped.Err)
		}
		response.Skipped[i] = SkippedOrder{ID: skipped.ID, Reason: skipped.Reason}
	}

	return c.JSON(http.StatusOK, response)
}

func statusNames(statuses []order.Status) []string {
	names := make([]string, len(statuses))
	for i, status := range statuses {
		names[i] = status.String()
	}
	return names
}
