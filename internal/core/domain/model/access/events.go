package access

import "starwings/internal/core/domain/model/kernel"

// RoleGranted is recorded when a principal newly receives a role.
// Idempotent re-grants record nothing.
type RoleGranted struct {
	Role      Role
	Principal kernel.Principal
	Caller    kernel.Principal
}

func (RoleGranted) EventName() string { return "RoleGranted" }

// RoleRevoked is recorded when a held role is removed, whether by an admin
// (revoke) or by the holder itself (renounce). Revoking an unheld role
// records nothing.
type RoleRevoked struct {
	Role      Role
	Principal kernel.Principal
	Caller    kernel.Principal
}

func (RoleRevoked) EventName() string { return "RoleRevoked" }

// RoleAdminChanged is recorded when the admin role of a role changes.
type RoleAdminChanged struct {
	Role              Role
	PreviousAdminRole Role
	NewAdminRole      Role
}

func (RoleAdminChanged) EventName() string { return "RoleAdminChanged" }
