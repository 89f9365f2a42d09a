package commands

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrPickUpParcelCommandIsNotConstructed = errors.New(
	"PickUpParcelCommand must be created via NewPickUpParcelCommand constructor",
)

// PickUpParcelCommand represents the flight's drone taking custody of the
// parcel. Custody is taken at most once per flight.
type PickUpParcelCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Principal
	handle kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickUpParcelCommand creates a command to take parcel custody.
func NewPickUpParcelCommand(caller kernel.Principal, handle kernel.UUID) (PickUpParcelCommand, error) {
	command := PickUpParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setHandle(handle),
	); err != nil {
		return PickUpParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PickUpParcelCommand) Validate() error {
	return c.guard.Validate(ErrPickUpParcelCommandIsNotConstructed)
}

// Caller returns the drone taking custody.
func (c PickUpParcelCommand) Caller() kernel.Principal {
	return c.caller
}

// FlightHandle returns the target flight.
func (c PickUpParcelCommand) FlightHandle() kernel.UUID {
	return c.handle
}

func (c *PickUpParcelCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *PickUpParcelCommand) setHandle(handle kernel.UUID) error {
	if err := handle.Validate(); err != nil {
		return err
	}

	c.handle = handle
	return nil
}
