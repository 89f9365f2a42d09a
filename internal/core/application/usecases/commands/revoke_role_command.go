package commands

import (
	"errors"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrRevokeRoleCommandIsNotConstructed = errors.New(
	"RevokeRoleCommand must be created via NewRevokeRoleCommand constructor",
)

// RevokeRoleCommand represents a request to revoke a role from a principal.
// Revoking a role the principal does not hold is a silent no-op.
type RevokeRoleCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	role      access.Role
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewRevokeRoleCommand creates a command to revoke a role.
func NewRevokeRoleCommand(caller kernel.Principal, role access.Role, principal kernel.Principal) (RevokeRoleCommand, error) {
	command := RevokeRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setRole(role),
		command.setPrincipal(principal),
	); err != nil {
		return RevokeRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RevokeRoleCommand) Validate() error {
	return c.guard.Validate(ErrRevokeRoleCommandIsNotConstructed)
}

// Caller returns the principal requesting the revocation.
func (c RevokeRoleCommand) Caller() kernel.Principal {
	return c.caller
}

// Role returns the role to revoke.
func (c RevokeRoleCommand) Role() access.Role {
	return c.role
}

// Principal returns the principal losing the role.
func (c RevokeRoleCommand) Principal() kernel.Principal {
	return c.principal
}

func (c *RevokeRoleCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *RevokeRoleCommand) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RevokeRoleCommand) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
