package main

import (
	"fmt"
	"io"
	"strconv"

	"catering/internal/core/application/usecases/queries"

	"github.com/olekukonko/tablewriter"
)

const dateLayout = "2006-01-02"

func renderValuation(w io.Writer, valuation queries.GetStockValuationQueryResponse) error {
	if _, err := fmt.Fprintln(w, "Stock valuation"); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Unit", "Quantity", "Unit cost", "Total value", "Active")
	for _, line := range valuation.Lines {
		err := table.Append(
			strconv.FormatInt(line.ID, 10),
			line.Name,
			line.Unit,
			line.Quantity.StringFixed(2),
			line.UnitCost.StringFixed(2),
			line.TotalValue.StringFixed(2),
			strconv.FormatBool(line.IsActive),
		)
		if err != nil {
			return err
		}
	}
	table.Footer("", "", "", "", "Total", valuation.Total.StringFixed(2), "")

	return table.Render()
}

func renderAlerts(w io.Writer, alerts []queries.GetStockAlertsQueryResponse) error {
	if len(alerts) == 0 {
		_, err := fmt.Fprintln(w, "No stock alerts")
		return err
	}
	if _, err := fmt.Fprintln(w, "Stock alerts"); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Quantity", "Minimum", "Expiry", "Reason")
	for _, alert := range alerts {
		expiry := "-"
		if alert.ExpiryDate != nil {
			expiry = alert.ExpiryDate.Format(dateLayout)
		}
		err := table.Append(
			strconv.FormatInt(alert.ID, 10),
			alert.Name,
			alert.Quantity.StringFixed(2)+" "+alert.Unit,
			alert.MinimumQuantity.StringFixed(2),
			expiry,
			alertReason(alert),
		)
		if err != nil {
			return err
		}
	}

	return table.Render()
}

func alertReason(alert queries.GetStockAlertsQueryResponse) string {
	switch {
	case alert.BelowMinimum && alert.Expiring:
		return "low, expiring"
	case alert.BelowMinimum:
		return "low"
	default:
		return "expiring"
	}
}
