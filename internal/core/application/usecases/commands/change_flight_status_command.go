package commands

import (
	"errors"

	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrChangeFlightStatusCommandIsNotConstructed = errors.New(
	"ChangeFlightStatusCommand must be created via NewChangeFlightStatusCommand constructor",
)

// ChangeFlightStatusCommand represents a request to advance a flight status
// tracker. The caller moves only its own tracker: the flight's pilot moves
// the pilot tracker, the flight's drone the drone tracker.
//
// The target status is carried unvalidated; the flight aggregate owns the
// transition rules and reports InvalidTransition for anything illegal,
// including out-of-range values.
type ChangeFlightStatusCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Principal
	handle kernel.UUID
	status flight.Status

	guard guard.ConstructorGuard
}

// NewChangeFlightStatusCommand creates a command to advance a status tracker.
func NewChangeFlightStatusCommand(caller kernel.Principal, handle kernel.UUID, status flight.Status) (ChangeFlightStatusCommand, error) {
	command := ChangeFlightStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setHandle(handle),
	); err != nil {
		return ChangeFlightStatusCommand{}, err
	}

	command.status = status
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeFlightStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeFlightStatusCommandIsNotConstructed)
}

// Caller returns the principal moving its tracker.
func (c ChangeFlightStatusCommand) Caller() kernel.Principal {
	return c.caller
}

// FlightHandle returns the target flight.
func (c ChangeFlightStatusCommand) FlightHandle() kernel.UUID {
	return c.handle
}

// Status returns the requested target status.
func (c ChangeFlightStatusCommand) Status() flight.Status {
	return c.status
}

func (c *ChangeFlightStatusCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *ChangeFlightStatusCommand) setHandle(handle kernel.UUID) error {
	if err := handle.Validate(); err != nil {
		return err
	}

	c.handle = handle
	return nil
}
