// Package services holds domain logic that does not belong to a single aggregate.
//
// The package includes:
//   - OrderWorkflow: the chokepoint every order status change passes through
//   - TransitionTableForMode: selects the permissive or strict transition table
//   - CheckUniformType: the optional same-type rule for bulk batches
package services
