package queries

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrGetAllDeliveriesQueryIsNotConstructed = errors.New(
	"GetAllDeliveriesQuery must be created via NewGetAllDeliveriesQuery constructor",
)

// GetAllDeliveriesQuery retrieves every delivery in the registry. Open to any
// principal holding a known role.
type GetAllDeliveriesQuery struct {
	caller kernel.Principal
	guard  guard.ConstructorGuard
}

// NewGetAllDeliveriesQuery creates a query to retrieve all deliveries.
func NewGetAllDeliveriesQuery(caller kernel.Principal) (GetAllDeliveriesQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetAllDeliveriesQuery{}, err
	}
	return GetAllDeliveriesQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliveriesQueryIsNotConstructed)
}

// Caller returns the requesting principal.
func (q GetAllDeliveriesQuery) Caller() kernel.Principal {
	return q.caller
}
