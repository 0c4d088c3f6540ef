// Package order holds the catering Order aggregate and its value objects.
//
// The package includes:
//   - Order: the aggregate root with workflow status, payment status, amounts and
//     fulfilment associations
//   - Status, Type, PaymentStatus: enums persisted under their snake_case names
//   - Number: the KA00001-style order number and the pure next-number computation
//   - TransitionTable: the (type, status) -> next statuses data consulted by every
//     status change, in a permissive and a strict flavour
//   - StatusChanged: the event recorded by a successful transition
//
// Key business rules:
//   - New orders start at quote_pending
//   - completed, cancelled_not_billable and cancelled_billable are terminal
//   - Delivery orders need a caterer and a delivery airport before out_for_delivery
//     or completed
//   - Payment status is free-form and independent of the workflow
package order
