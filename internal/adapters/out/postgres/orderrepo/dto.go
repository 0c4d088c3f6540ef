// Package orderrepo persists the order aggregate and allocates order numbers.
// Enumerations are stored by their string names so that the tables stay readable
// to reporting tools that query them directly.
package orderrepo

import (
	"time"

	"catering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the orders table.
type OrderDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	OrderNumber   string `gorm:"size:32;not null;uniqueIndex"`
	Type          string `gorm:"size:32;not null"`
	Status        string `gorm:"size:32;not null;index"`
	PaymentStatus string `gorm:"size:32;not null"`
	PaymentType   string `gorm:"size:64"`

	Total          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalTax       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalCharges   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ManualDiscount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryCharge decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	GrandTotal     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	VendorCost     decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Revision   int    `gorm:"not null;default:0"`
	CustomerID *int64 `gorm:"index"`
	CatererID  *int64 `gorm:"index"`
	AirportID  *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// CounterDTO holds the last number issued for a prefix. Its row is the lock that
// serializes allocation.
type CounterDTO struct {
	Prefix    string `gorm:"primaryKey;size:2"`
	LastValue int64  `gorm:"not null"`
}

func (CounterDTO) TableName() string {
	return "order_number_counters"
}

func fromDomain(o *order.Order) OrderDTO {
	amounts := o.Amounts()
	return OrderDTO{
		ID:             o.ID(),
		OrderNumber:    o.Number().String(),
		Type:           o.Type().String(),
		Status:         o.Status().String(),
		PaymentStatus:  o.PaymentStatus().String(),
		PaymentType:    o.PaymentType(),
		Total:          amounts.Total,
		TotalTax:       amounts.TotalTax,
		TotalCharges:   amounts.TotalCharges,
		Discount:       amounts.Discount,
		ManualDiscount: amounts.ManualDiscount,
		DeliveryCharge: amounts.DeliveryCharge,
		GrandTotal:     amounts.GrandTotal,
		VendorCost:     amounts.VendorCost,
		Revision:       o.Revision(),
		CustomerID:     o.CustomerID(),
		CatererID:      o.CatererID(),
		AirportID:      o.AirportID(),
	}
}

// toDomain reconstructs the aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := order.ParseNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}
	orderType, err := order.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:            dto.ID,
		Number:        number,
		Type:          orderType,
		Status:        status,
		PaymentStatus: paymentStatus,
		PaymentType:   dto.PaymentType,
		Amounts: order.Amounts{
			Total:          dto.Total,
			TotalTax:       dto.TotalTax,
			TotalCharges:   dto.TotalCharges,
			Discount:       dto.Discount,
			ManualDiscount: dto.ManualDiscount,
			DeliveryCharge: dto.DeliveryCharge,
			GrandTotal:     dto.GrandTotal,
			VendorCost:     dto.VendorCost,
		},
		Revision:   dto.Revision,
		CustomerID: dto.CustomerID,
		CatererID:  dto.CatererID,
		AirportID:  dto.AirportID,
	})
}
