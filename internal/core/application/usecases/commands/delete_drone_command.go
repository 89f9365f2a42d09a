package commands

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrDeleteDroneCommandIsNotConstructed = errors.New(
	"DeleteDroneCommand must be created via NewDeleteDroneCommand constructor",
)

// DeleteDroneCommand represents a request to soft-delete a roster drone.
// Admin-gated.
type DeleteDroneCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewDeleteDroneCommand creates a command to soft-delete a drone.
func NewDeleteDroneCommand(caller, principal kernel.Principal) (DeleteDroneCommand, error) {
	command := DeleteDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setPrincipal(principal),
	); err != nil {
		return DeleteDroneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDroneCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDroneCommandIsNotConstructed)
}

// Caller returns the principal requesting the deletion.
func (c DeleteDroneCommand) Caller() kernel.Principal {
	return c.caller
}

// Principal returns the drone to delete.
func (c DeleteDroneCommand) Principal() kernel.Principal {
	return c.principal
}

func (c *DeleteDroneCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *DeleteDroneCommand) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
