package queries

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrGetDroneQueryIsNotConstructed = errors.New(
	"GetDroneQuery must be created via NewGetDroneQuery constructor",
)

// GetDroneQuery retrieves one drone roster slot by principal. Admin-gated,
// except that a drone may always look up its own slot.
type GetDroneQuery struct {
	caller    kernel.Principal
	principal kernel.Principal
	guard     guard.ConstructorGuard
}

// NewGetDroneQuery creates a query for the drone with the given principal.
func NewGetDroneQuery(caller, principal kernel.Principal) (GetDroneQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetDroneQuery{}, err
	}
	if err := principal.Validate(); err != nil {
		return GetDroneQuery{}, err
	}
	return GetDroneQuery{caller: caller, principal: principal, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDroneQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneQueryIsNotConstructed)
}

// Caller returns the requesting principal.
func (q GetDroneQuery) Caller() kernel.Principal {
	return q.caller
}

// Principal returns the requested principal.
func (q GetDroneQuery) Principal() kernel.Principal {
	return q.principal
}
