// Package guard provides ConstructorGuard, a marker embedded in commands and queries
// so that handlers can reject zero values that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was built by its constructor.
//
// Example usage:
//
//	type RestockCommand struct {
//	    stockItemID int64
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewRestockCommand(id int64) (RestockCommand, error) {
//	    return RestockCommand{stockItemID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RestockCommand) Validate() error {
//	    return c.guard.Validate(ErrRestockCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) if the guard
// is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
