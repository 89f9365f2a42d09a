package commands

import (
	"errors"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrSetRoleAdminCommandIsNotConstructed = errors.New(
	"SetRoleAdminCommand must be created via NewSetRoleAdminCommand constructor",
)

// SetRoleAdminCommand represents a request to delegate administration of one
// role to another. The change affects future grants and revocations only;
// existing role holders keep their roles.
type SetRoleAdminCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	role      access.Role
	adminRole access.Role

	guard guard.ConstructorGuard
}

// NewSetRoleAdminCommand creates a command to change a role's admin role.
func NewSetRoleAdminCommand(caller kernel.Principal, role, adminRole access.Role) (SetRoleAdminCommand, error) {
	command := SetRoleAdminCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setRole(role),
		command.setAdminRole(adminRole),
	); err != nil {
		return SetRoleAdminCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRoleAdminCommand) Validate() error {
	return c.guard.Validate(ErrSetRoleAdminCommandIsNotConstructed)
}

// Caller returns the principal requesting the delegation.
func (c SetRoleAdminCommand) Caller() kernel.Principal {
	return c.caller
}

// Role returns the role whose administration changes.
func (c SetRoleAdminCommand) Role() access.Role {
	return c.role
}

// AdminRole returns the new admin role.
func (c SetRoleAdminCommand) AdminRole() access.Role {
	return c.adminRole
}

func (c *SetRoleAdminCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *SetRoleAdminCommand) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *SetRoleAdminCommand) setAdminRole(adminRole access.Role) error {
	if err := adminRole.Validate(); err != nil {
		return err
	}

	c.adminRole = adminRole
	return nil
}
