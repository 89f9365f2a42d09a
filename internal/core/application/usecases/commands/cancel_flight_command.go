package commands

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrCancelFlightCommandIsNotConstructed = errors.New(
	"CancelFlightCommand must be created via NewCancelFlightCommand constructor",
)

// CancelFlightCommand represents a pilot abandoning a flight before
// departure. This is the only path into the Canceled status.
type CancelFlightCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Principal
	handle kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelFlightCommand creates a command to cancel a flight.
func NewCancelFlightCommand(caller kernel.Principal, handle kernel.UUID) (CancelFlightCommand, error) {
	command := CancelFlightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setHandle(handle),
	); err != nil {
		return CancelFlightCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelFlightCommand) Validate() error {
	return c.guard.Validate(ErrCancelFlightCommandIsNotConstructed)
}

// Caller returns the canceling pilot.
func (c CancelFlightCommand) Caller() kernel.Principal {
	return c.caller
}

// FlightHandle returns the flight to cancel.
func (c CancelFlightCommand) FlightHandle() kernel.UUID {
	return c.handle
}

func (c *CancelFlightCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CancelFlightCommand) setHandle(handle kernel.UUID) error {
	if err := handle.Validate(); err != nil {
		return err
	}

	c.handle = handle
	return nil
}
