package commands

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

var ErrAddPilotCommandIsNotConstructed = errors.New(
	"AddPilotCommand must be created via NewAddPilotCommand constructor",
)

// AddPilotCommand represents a request to add a pilot to the roster.
// Admin-gated. Re-adding a soft-deleted principal reinstates its original
// slot; re-adding a live one is a duplicate.
type AddPilotCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	principal kernel.Principal
	name      string

	guard guard.ConstructorGuard
}

// NewAddPilotCommand creates a command to add a pilot.
func NewAddPilotCommand(caller, principal kernel.Principal, name string) (AddPilotCommand, error) {
	command := AddPilotCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setPrincipal(principal),
		command.setName(name),
	); err != nil {
		return AddPilotCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPilotCommand) Validate() error {
	return c.guard.Validate(ErrAddPilotCommandIsNotConstructed)
}

// Caller returns the principal requesting the addition.
func (c AddPilotCommand) Caller() kernel.Principal {
	return c.caller
}

// Principal returns the pilot's identity.
func (c AddPilotCommand) Principal() kernel.Principal {
	return c.principal
}

// Name returns the pilot's display name.
func (c AddPilotCommand) Name() string {
	return c.name
}

func (c *AddPilotCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *AddPilotCommand) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *AddPilotCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
