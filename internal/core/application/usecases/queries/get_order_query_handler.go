package queries

import (
	"context"
	"database/sql"
	"errors"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order straight from the orders table and asks the
// workflow for its next allowed statuses.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db, workflow)
//	query, _ := NewGetOrderQuery(42)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such order
//	}
type GetOrderQueryHandler struct {
	db       *gorm.DB
	workflow services.OrderWorkflow
}

func NewGetOrderQueryHandler(db *gorm.DB, workflow services.OrderWorkflow) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, workflow: workflow}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			type,
			status,
			payment_status,
			payment_type,
			total,
			total_tax,
			total_charges,
			discount,
			manual_discount,
			delivery_charge,
			grand_total,
			vendor_cost,
			revision,
			customer_id,
			caterer_id,
			airport_id
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	var (
		resp                             GetOrderQueryResponse
		orderType, status, paymentStatus string
		customerID, catererID, airportID sql.NullInt64
	)
	err := row.Scan(
		&resp.ID,
		&resp.Number,
		&orderType,
		&status,
		&paymentStatus,
		&resp.PaymentType,
		&resp.Amounts.Total,
		&resp.Amounts.TotalTax,
		&resp.Amounts.TotalCharges,
		&resp.Amounts.Discount,
		&resp.Amounts.ManualDiscount,
		&resp.Amounts.DeliveryCharge,
		&resp.Amounts.GrandTotal,
		&resp.Amounts.VendorCost,
		&resp.Revision,
		&customerID,
		&catererID,
		&airportID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Type, err = order.ParseType(orderType); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Status, err = order.ParseStatus(status); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.PaymentStatus, err = order.ParsePaymentStatus(paymentStatus); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CustomerID = nullableID(customerID)
	resp.CatererID = nullableID(catererID)
	resp.AirportID = nullableID(airportID)
	resp.NextAllowedStatuses = h.workflow.NextAllowedStatesFor(resp.Type, resp.Status)

	return resp, nil
}

func nullableID(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
