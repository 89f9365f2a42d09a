package commands

import (
	"errors"

	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrCompleteFlightCheckCommandIsNotConstructed = errors.New(
	"CompleteFlightCheckCommand must be created via NewCompleteFlightCheckCommand constructor",
)

// CompleteFlightCheckCommand represents the flight's pilot ticking one item
// of the preflight or postflight checklist. Completion is idempotent.
type CompleteFlightCheckCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Principal
	handle     kernel.UUID
	check      flight.Check
	postflight bool

	guard guard.ConstructorGuard
}

// NewCompleteFlightCheckCommand creates a command to tick a checklist item.
// postflight selects the postflight list; the default is preflight.
func NewCompleteFlightCheckCommand(caller kernel.Principal, handle kernel.UUID, check flight.Check, postflight bool) (CompleteFlightCheckCommand, error) {
	command := CompleteFlightCheckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setHandle(handle),
		command.setCheck(check),
	); err != nil {
		return CompleteFlightCheckCommand{}, err
	}

	command.postflight = postflight
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteFlightCheckCommand) Validate() error {
	return c.guard.Validate(ErrCompleteFlightCheckCommandIsNotConstructed)
}

// Caller returns the pilot ticking the item.
func (c CompleteFlightCheckCommand) Caller() kernel.Principal {
	return c.caller
}

// FlightHandle returns the target flight.
func (c CompleteFlightCheckCommand) FlightHandle() kernel.UUID {
	return c.handle
}

// Check returns the checklist item.
func (c CompleteFlightCheckCommand) Check() flight.Check {
	return c.check
}

// Postflight reports whether the postflight list is targeted.
func (c CompleteFlightCheckCommand) Postflight() bool {
	return c.postflight
}

func (c *CompleteFlightCheckCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CompleteFlightCheckCommand) setHandle(handle kernel.UUID) error {
	if err := handle.Validate(); err != nil {
		return err
	}

	c.handle = handle
	return nil
}

func (c *CompleteFlightCheckCommand) setCheck(check flight.Check) error {
	if err := check.Validate(); err != nil {
		return err
	}

	c.check = check
	return nil
}
