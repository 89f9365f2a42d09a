package queries

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

var ErrGetConopsQueryIsNotConstructed = errors.New(
	"GetConopsQuery must be created via NewGetConopsQuery constructor",
)

// GetConopsQuery retrieves one dossier by its registry id. Open to any
// principal holding a known role.
type GetConopsQuery struct {
	caller   kernel.Principal
	conopsID int
	guard    guard.ConstructorGuard
}

// NewGetConopsQuery creates a query for the dossier with the given id.
func NewGetConopsQuery(caller kernel.Principal, conopsID int) (GetConopsQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetConopsQuery{}, err
	}
	if conopsID < 0 {
		return GetConopsQuery{}, errs.NewValueIsInvalidError("conopsID")
	}
	return GetConopsQuery{caller: caller, conopsID: conopsID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConopsQuery) Validate() error {
	return q.guard.Validate(ErrGetConopsQueryIsNotConstructed)
}

// Caller returns the requesting principal.
func (q GetConopsQuery) Caller() kernel.Principal {
	return q.caller
}

// ConopsID returns the requested dossier id.
func (q GetConopsQuery) ConopsID() int {
	return q.conopsID
}
