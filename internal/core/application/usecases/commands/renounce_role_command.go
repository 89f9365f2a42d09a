package commands

import (
	"errors"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrRenounceRoleCommandIsNotConstructed = errors.New(
	"RenounceRoleCommand must be created via NewRenounceRoleCommand constructor",
)

// RenounceRoleCommand represents a principal giving up one of its own roles.
// The registry refuses renunciation on behalf of anyone else.
type RenounceRoleCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	role      access.Role
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewRenounceRoleCommand creates a command to renounce a role.
// The principal argument is carried explicitly so the self-only rule is
// enforced by the registry, not assumed by the transport.
func NewRenounceRoleCommand(caller kernel.Principal, role access.Role, principal kernel.Principal) (RenounceRoleCommand, error) {
	command := RenounceRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setRole(role),
		command.setPrincipal(principal),
	); err != nil {
		return RenounceRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RenounceRoleCommand) Validate() error {
	return c.guard.Validate(ErrRenounceRoleCommandIsNotConstructed)
}

// Caller returns the principal requesting the renunciation.
func (c RenounceRoleCommand) Caller() kernel.Principal {
	return c.caller
}

// Role returns the role to renounce.
func (c RenounceRoleCommand) Role() access.Role {
	return c.role
}

// Principal returns the principal giving up the role.
func (c RenounceRoleCommand) Principal() kernel.Principal {
	return c.principal
}

func (c *RenounceRoleCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *RenounceRoleCommand) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RenounceRoleCommand) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
