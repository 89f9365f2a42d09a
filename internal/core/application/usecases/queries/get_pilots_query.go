package queries

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrGetPilotsQueryIsNotConstructed = errors.New(
	"GetPilotsQuery must be created via NewGetPilotsQuery constructor",
)

// GetPilotsQuery retrieves the pilot roster, deleted entries included.
// Slot indexes are stable: a deleted pilot keeps its index so flight history
// stays attributable. Admin-gated.
type GetPilotsQuery struct {
	caller kernel.Principal
	guard  guard.ConstructorGuard
}

// NewGetPilotsQuery creates a query to retrieve the pilot roster.
func NewGetPilotsQuery(caller kernel.Principal) (GetPilotsQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetPilotsQuery{}, err
	}
	return GetPilotsQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPilotsQuery) Validate() error {
	return q.guard.Validate(ErrGetPilotsQueryIsNotConstructed)
}

// Caller returns the requesting principal.
func (q GetPilotsQuery) Caller() kernel.Principal {
	return q.caller
}

// PilotResponse represents one pilot roster slot in the read model.
type PilotResponse struct {
	Index         int
	Name          string
	Principal     string
	Deleted       bool
	FlightHandles []kernel.UUID
}
