// Package errs provides standardized error types for the catering order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the scenarios the core distinguishes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: unknown order, stock item, caterer or airport
//   - ConflictError: uniqueness violated at insert time (order numbers)
//   - PreconditionFailedError: disallowed status transition or missing association
//   - ErrArithmetic: a guarded arithmetic invariant was broken
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
package errs
