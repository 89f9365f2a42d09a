package commands

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrDeletePilotCommandIsNotConstructed = errors.New(
	"DeletePilotCommand must be created via NewDeletePilotCommand constructor",
)

// DeletePilotCommand represents a request to soft-delete a roster pilot.
// Admin-gated. The slot and its flight history are kept.
type DeletePilotCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewDeletePilotCommand creates a command to soft-delete a pilot.
func NewDeletePilotCommand(caller, principal kernel.Principal) (DeletePilotCommand, error) {
	command := DeletePilotCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setPrincipal(principal),
	); err != nil {
		return DeletePilotCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePilotCommand) Validate() error {
	return c.guard.Validate(ErrDeletePilotCommandIsNotConstructed)
}

// Caller returns the principal requesting the deletion.
func (c DeletePilotCommand) Caller() kernel.Principal {
	return c.caller
}

// Principal returns the pilot to delete.
func (c DeletePilotCommand) Principal() kernel.Principal {
	return c.principal
}

func (c *DeletePilotCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *DeletePilotCommand) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
