// Package kernel provides the primitives shared by the catering domain model.
//
// The package includes:
//   - UUID: an identifier value object used for domain events
//   - Round and NonNegative: fixed two-decimal handling for money and stock quantities
//
// Quantities and amounts are github.com/shopspring/decimal values throughout the
// domain so that arithmetic is exact before the final rounding step.
package kernel
