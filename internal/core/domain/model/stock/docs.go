// Package stock values inventory at weighted-average cost.
//
// Create, Update and Restock are pure functions over Valuation and carry all of the
// arithmetic; StockItem applies them and never touches quantity or cost otherwise.
// Every quantity, cost and total is rounded to two fractional digits, half away
// from zero, so repeated restocks of the same inputs store identical totals.
package stock
