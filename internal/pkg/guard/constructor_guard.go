// Package guard provides a defensive-programming primitive that ensures value
// objects and entities are only created through their designated constructor
// functions, never as bare zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate when a
// nil validation error is passed. This ensures validation always fails with a
// meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its constructor
// or as a zero value. Embed it in a domain object and set it with
// NewConstructorGuard inside the constructor; Validate then distinguishes
// properly built instances from accidental zero values.
//
// Example:
//
//	type Conops struct {
//	    id    int
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewConops(id int, name string) (Conops, error) {
//	    if name == "" {
//	        return Conops{}, errors.New("name is required")
//	    }
//	    return Conops{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Conops) Validate() error {
//	    return c.guard.Validate(ErrConopsIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was built through its
// constructor. For zero-value instances it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
