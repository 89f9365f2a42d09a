package queries

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrGetFlightHandlesQueryIsNotConstructed = errors.New(
	"GetFlightHandlesQuery must be created via NewGetFlightHandlesQuery constructor",
)

// GetFlightHandlesQuery retrieves the handles of every flight ever allocated.
// Admin-gated; crew members reach their own handles through their roster slot.
type GetFlightHandlesQuery struct {
	caller kernel.Principal
	guard  guard.ConstructorGuard
}

// NewGetFlightHandlesQuery creates a query to retrieve all flight handles.
func NewGetFlightHandlesQuery(caller kernel.Principal) (GetFlightHandlesQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetFlightHandlesQuery{}, err
	}
	return GetFlightHandlesQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFlightHandlesQuery) Validate() error {
	return q.guard.Validate(ErrGetFlightHandlesQueryIsNotConstructed)
}

// Caller returns the requesting principal.
func (q GetFlightHandlesQuery) Caller() kernel.Principal {
	return q.caller
}
