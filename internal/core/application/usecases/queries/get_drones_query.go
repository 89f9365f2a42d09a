package queries

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrGetDronesQueryIsNotConstructed = errors.New(
	"GetDronesQuery must be created via NewGetDronesQuery constructor",
)

// GetDronesQuery retrieves the drone roster, deleted entries included.
// Admin-gated.
type GetDronesQuery struct {
	caller kernel.Principal
	guard  guard.ConstructorGuard
}

// NewGetDronesQuery creates a query to retrieve the drone roster.
func NewGetDronesQuery(caller kernel.Principal) (GetDronesQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetDronesQuery{}, err
	}
	return GetDronesQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDronesQuery) Validate() error {
	return q.guard.Validate(ErrGetDronesQueryIsNotConstructed)
}

// Caller returns the requesting principal.
func (q GetDronesQuery) Caller() kernel.Principal {
	return q.caller
}

// DroneResponse represents one drone roster slot in the read model.
type DroneResponse struct {
	Index         int
	DroneID       string
	DroneType     string
	Principal     string
	Deleted       bool
	FlightHandles []kernel.UUID
}
