// Package guard implements the constructor-guard pattern used across the
// domain model. Embedding a ConstructorGuard in a value object or entity
// makes zero-value instances detectable: only objects created through their
// designated constructor pass validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero
// values. The zero value of ConstructorGuard fails validation; the value
// returned by NewConstructorGuard passes it.
//
// Example:
//
//	type Settings struct {
//	    taxRate float64
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewSettings(taxRate float64) (Settings, error) {
//	    // validate taxRate ...
//	    return Settings{taxRate: taxRate, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Settings) Validate() error {
//	    return s.guard.Validate(ErrSettingsIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it in
// every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero values it
// returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
