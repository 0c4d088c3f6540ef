package commands_test

import (
	"testing"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 2, 10, 15, 0, 0, 0, time.UTC)

func strictWorkflow() services.OrderWorkflow {
	return services.NewOrderWorkflow(order.StrictTransitionTable(), func() time.Time { return fixedNow })
}

func existingOrder(t *testing.T, id int64, typ order.Type, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:            id,
		Number:        number(t, id),
		Type:          typ,
		Status:        status,
		PaymentStatus: order.Unpaid,
	})
	require.NoError(t, err)
	return o
}

func assignedOrder(t *testing.T, id int64, status order.Status, catererID, airportID int64) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:            id,
		Number:        number(t, id),
		Type:          order.Delivery,
		Status:        status,
		PaymentStatus: order.Unpaid,
		CatererID:     &catererID,
		AirportID:     &airportID,
	})
	require.NoError(t, err)
	return o
}
