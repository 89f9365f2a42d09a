package commands

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrDeliverParcelCommandIsNotConstructed = errors.New(
	"DeliverParcelCommand must be created via NewDeliverParcelCommand constructor",
)

// DeliverParcelCommand represents the flight's drone handing the parcel to
// the recipient. Requires prior pickup.
type DeliverParcelCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Principal
	handle kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverParcelCommand creates a command to record parcel delivery.
func NewDeliverParcelCommand(caller kernel.Principal, handle kernel.UUID) (DeliverParcelCommand, error) {
	command := DeliverParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setHandle(handle),
	); err != nil {
		return DeliverParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeliverParcelCommandIsNotConstructed)
}

// Caller returns the delivering drone.
func (c DeliverParcelCommand) Caller() kernel.Principal {
	return c.caller
}

// FlightHandle returns the target flight.
func (c DeliverParcelCommand) FlightHandle() kernel.UUID {
	return c.handle
}

func (c *DeliverParcelCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *DeliverParcelCommand) setHandle(handle kernel.UUID) error {
	if err := handle.Validate(); err != nil {
		return err
	}

	c.handle = handle
	return nil
}
