package queries

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrGetPilotQueryIsNotConstructed = errors.New(
	"GetPilotQuery must be created via NewGetPilotQuery constructor",
)

// GetPilotQuery retrieves one pilot roster slot by principal. Admin-gated,
// except that a pilot may always look up its own slot.
type GetPilotQuery struct {
	caller    kernel.Principal
	principal kernel.Principal
	guard     guard.ConstructorGuard
}

// NewGetPilotQuery creates a query for the pilot with the given principal.
func NewGetPilotQuery(caller, principal kernel.Principal) (GetPilotQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetPilotQuery{}, err
	}
	if err := principal.Validate(); err != nil {
		return GetPilotQuery{}, err
	}
	return GetPilotQuery{caller: caller, principal: principal, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPilotQuery) Validate() error {
	return q.guard.Validate(ErrGetPilotQueryIsNotConstructed)
}

// Caller returns the requesting principal.
func (q GetPilotQuery) Caller() kernel.Principal {
	return q.caller
}

// Principal returns the requested principal.
func (q GetPilotQuery) Principal() kernel.Principal {
	return q.principal
}
