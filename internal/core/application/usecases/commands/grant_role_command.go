package commands

import (
	"errors"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrGrantRoleCommandIsNotConstructed = errors.New(
	"GrantRoleCommand must be created via NewGrantRoleCommand constructor",
)

// GrantRoleCommand represents a request to grant a role to a principal.
//
// Example:
//
//	cmd, err := NewGrantRoleCommand(caller, access.PilotRole, pilotPrincipal)
//	if err != nil {
//	    return fmt.Errorf("invalid grant request: %w", err)
//	}
//
//	handler := NewGrantRoleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to grant role: %w", err)
//	}
type GrantRoleCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	role      access.Role
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewGrantRoleCommand creates a command to grant a role.
// Validates that the role is known and both principals are set.
func NewGrantRoleCommand(caller kernel.Principal, role access.Role, principal kernel.Principal) (GrantRoleCommand, error) {
	command := GrantRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setRole(role),
		command.setPrincipal(principal),
	); err != nil {
		return GrantRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GrantRoleCommand) Validate() error {
	return c.guard.Validate(ErrGrantRoleCommandIsNotConstructed)
}

// Caller returns the principal requesting the grant.
func (c GrantRoleCommand) Caller() kernel.Principal {
	return c.caller
}

// Role returns the role to grant.
func (c GrantRoleCommand) Role() access.Role {
	return c.role
}

// Principal returns the grant recipient.
func (c GrantRoleCommand) Principal() kernel.Principal {
	return c.principal
}

func (c *GrantRoleCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *GrantRoleCommand) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *GrantRoleCommand) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
