package access

import (
	"starwings/internal/pkg/errs"
)

// Role is a named capability tag. Holding a role is what authorizes a
// principal to invoke the gated operations of the registries and flights.
type Role string

// The role set of the Starwings service. DefaultAdminRole is the
// self-administering super role granted to the bootstrap principal at
// provisioning time; it administers every other role until SetRoleAdmin
// delegates differently.
const (
	DefaultAdminRole Role = "DEFAULT_ADMIN_ROLE"
	AdminRole        Role = "ADMIN_ROLE"
	PilotRole        Role = "PILOT_ROLE"
	DroneRole        Role = "DRONE_ROLE"
)

// KnownRoles lists every role the service ships with. Grants are not limited
// to this list — the registry accepts arbitrary role names, matching the
// open-ended role model of the original access control layer.
func KnownRoles() []Role {
	return []Role{DefaultAdminRole, AdminRole, PilotRole, DroneRole}
}

// Validate rejects the empty role name.
func (r Role) Validate() error {
	if r == "" {
		return errs.NewValueIsRequiredError("role")
	}
	return nil
}

func (r Role) String() string {
	return string(r)
}
