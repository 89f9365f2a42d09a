package queries

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrGetRolesQueryIsNotConstructed = errors.New(
	"GetRolesQuery must be created via NewGetRolesQuery constructor",
)

// GetRolesQuery retrieves the full role registry: every grant and every
// admin-role delegation. Admin-gated.
type GetRolesQuery struct {
	caller kernel.Principal
	guard  guard.ConstructorGuard
}

// NewGetRolesQuery creates a query to retrieve the role registry.
func NewGetRolesQuery(caller kernel.Principal) (GetRolesQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetRolesQuery{}, err
	}
	return GetRolesQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRolesQuery) Validate() error {
	return q.guard.Validate(ErrGetRolesQueryIsNotConstructed)
}

// Caller returns the requesting principal.
func (q GetRolesQuery) Caller() kernel.Principal {
	return q.caller
}

// RoleGrantResponse is one (role, principal) pair of the registry.
type RoleGrantResponse struct {
	Role      string
	Principal string
}

// RoleAdminResponse records which role administers a role. Roles without a
// row here are administered by the default admin role.
type RoleAdminResponse struct {
	Role      string
	AdminRole string
}

// RolesResponse represents the role registry in the read model.
type RolesResponse struct {
	Grants []RoleGrantResponse
	Admins []RoleAdminResponse
}
