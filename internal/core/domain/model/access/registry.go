package access

import (
	"errors"
	"sort"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

// ErrRegistryIsNotConstructed is returned when a Registry instance was not
// created through NewRegistry or RestoreRegistry.
var ErrRegistryIsNotConstructed = errors.New(
	"Registry must be created via NewRegistry or RestoreRegistry")

// Grant is one (role, principal) pair, the persistence unit of the registry.
type Grant struct {
	Role      Role
	Principal kernel.Principal
}

// Registry is the identity registry aggregate: it tracks which principal holds
// which role and which role administers each role.
//
// Invariants:
//   - grant and revoke are idempotent; a no-op change records no event
//   - only holders of GetRoleAdmin(role) may grant or revoke that role
//   - a principal may renounce only its own roles
//   - the default admin role of every role is DefaultAdminRole, which
//     administers itself
//
// Changing a role's admin role affects future authorization checks only;
// existing holders keep their grants.
type Registry struct {
	kernel.EventRecorder

	grants map[Role]map[kernel.Principal]bool
	admins map[Role]Role

	guard guard.ConstructorGuard
}

// NewRegistry creates an identity registry with DefaultAdminRole granted to
// the bootstrap principal, mirroring how provisioning seeds the deployer.
func NewRegistry(bootstrap kernel.Principal) (*Registry, error) {
	if err := bootstrap.Validate(); err != nil {
		return nil, err
	}

	r := &Registry{
		grants: make(map[Role]map[kernel.Principal]bool),
		admins: make(map[Role]Role),
		guard:  guard.NewConstructorGuard(),
	}
	r.setRole(DefaultAdminRole, bootstrap)
	r.Record(RoleGranted{Role: DefaultAdminRole, Principal: bootstrap, Caller: bootstrap})
	return r, nil
}

// RestoreRegistry reconstructs the aggregate from persisted grants and admin
// delegations. Used by the persistence adapter only.
func RestoreRegistry(grants []Grant, admins map[Role]Role) (*Registry, error) {
	r := &Registry{
		grants: make(map[Role]map[kernel.Principal]bool),
		admins: make(map[Role]Role),
		guard:  guard.NewConstructorGuard(),
	}

	for _, g := range grants {
		if err := errors.Join(g.Role.Validate(), g.Principal.Validate()); err != nil {
			return nil, err
		}
		r.setRole(g.Role, g.Principal)
	}
	for role, admin := range admins {
		if err := errors.Join(role.Validate(), admin.Validate()); err != nil {
			return nil, err
		}
		r.admins[role] = admin
	}
	return r, nil
}

// Validate ensures the Registry was built through a constructor.
func (r *Registry) Validate() error {
	if r == nil {
		return ErrRegistryIsNotConstructed
	}
	return r.guard.Validate(ErrRegistryIsNotConstructed)
}

// HasRole reports whether the principal currently holds the role.
func (r *Registry) HasRole(role Role, principal kernel.Principal) bool {
	return r.grants[role][principal]
}

// GetRoleAdmin returns the role that administers the given role.
// Roles with no explicit delegation are administered by DefaultAdminRole.
func (r *Registry) GetRoleAdmin(role Role) Role {
	if admin, ok := r.admins[role]; ok {
		return admin
	}
	return DefaultAdminRole
}

// RequireRole returns an AccessRefusedError unless the principal holds the role.
func (r *Registry) RequireRole(principal kernel.Principal, role Role) error {
	if !r.HasRole(role, principal) {
		return errs.NewAccessRefusedError(principal.String(), role.String())
	}
	return nil
}

// RequireAnyRole returns nil if the principal holds at least one of the roles.
func (r *Registry) RequireAnyRole(principal kernel.Principal, roles ...Role) error {
	for _, role := range roles {
		if r.HasRole(role, principal) {
			return nil
		}
	}
	missing := ""
	for i, role := range roles {
		if i > 0 {
			missing += " or "
		}
		missing += role.String()
	}
	return errs.NewAccessRefusedError(principal.String(), missing)
}

// GrantRole gives the role to the principal. The caller must hold the role's
// admin role. Granting an already-held role is a silent no-op.
func (r *Registry) GrantRole(caller kernel.Principal, role Role, principal kernel.Principal) error {
	if err := errors.Join(role.Validate(), principal.Validate()); err != nil {
		return err
	}
	if err := r.RequireRole(caller, r.GetRoleAdmin(role)); err != nil {
		return err
	}
	if r.HasRole(role, principal) {
		return nil
	}

	r.setRole(role, principal)
	r.Record(RoleGranted{Role: role, Principal: principal, Caller: caller})
	return nil
}

// RevokeRole removes the role from the principal. The caller must hold the
// role's admin role. Revoking an unheld role is a silent no-op.
func (r *Registry) RevokeRole(caller kernel.Principal, role Role, principal kernel.Principal) error {
	if err := errors.Join(role.Validate(), principal.Validate()); err != nil {
		return err
	}
	if err := r.RequireRole(caller, r.GetRoleAdmin(role)); err != nil {
		return err
	}
	return r.removeRole(caller, role, principal)
}

// RenounceRole lets a principal drop one of its own roles. Callers may only
// renounce for themselves.
func (r *Registry) RenounceRole(caller kernel.Principal, role Role, principal kernel.Principal) error {
	if err := errors.Join(role.Validate(), principal.Validate()); err != nil {
		return err
	}
	if !caller.IsEqual(principal) {
		return errs.NewAccessRefusedErrorWithCause(caller.String(), role.String(),
			errors.New("can only renounce roles for self"))
	}
	return r.removeRole(caller, role, principal)
}

// SetRoleAdmin delegates administration of role to adminRole. The caller must
// hold the role's current admin role. Existing grants are unaffected.
func (r *Registry) SetRoleAdmin(caller kernel.Principal, role Role, adminRole Role) error {
	if err := errors.Join(role.Validate(), adminRole.Validate()); err != nil {
		return err
	}
	previous := r.GetRoleAdmin(role)
	if err := r.RequireRole(caller, previous); err != nil {
		return err
	}
	if previous == adminRole {
		return nil
	}

	r.admins[role] = adminRole
	r.Record(RoleAdminChanged{Role: role, PreviousAdminRole: previous, NewAdminRole: adminRole})
	return nil
}

// Grants returns every (role, principal) pair in a stable order, for
// persistence and read models.
func (r *Registry) Grants() []Grant {
	out := make([]Grant, 0)
	for role, holders := range r.grants {
		for principal, held := range holders {
			if held {
				out = append(out, Grant{Role: role, Principal: principal})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Role != out[j].Role {
			return out[i].Role < out[j].Role
		}
		return out[i].Principal.String() < out[j].Principal.String()
	})
	return out
}

// RoleAdmins returns the explicit admin delegations (roles still on the
// default admin are omitted).
func (r *Registry) RoleAdmins() map[Role]Role {
	out := make(map[Role]Role, len(r.admins))
	for role, admin := range r.admins {
		out[role] = admin
	}
	return out
}

func (r *Registry) setRole(role Role, principal kernel.Principal) {
	if r.grants[role] == nil {
		r.grants[role] = make(map[kernel.Principal]bool)
	}
	r.grants[role][principal] = true
}

func (r *Registry) removeRole(caller kernel.Principal, role Role, principal kernel.Principal) error {
	if !r.HasRole(role, principal) {
		return nil
	}
	delete(r.grants[role], principal)
	r.Record(RoleRevoked{Role: role, Principal: principal, Caller: caller})
	return nil
}
