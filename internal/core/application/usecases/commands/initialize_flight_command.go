package commands

import (
	"errors"
	"time"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

var ErrInitializeFlightCommandIsNotConstructed = errors.New(
	"InitializeFlightCommand must be created via NewInitializeFlightCommand constructor",
)

// InitializeFlightCommand represents the second phase of flight creation:
// the allocating pilot fixes the operational plan. Initialization happens
// exactly once per handle.
type InitializeFlightCommand struct { //nolint:recvcheck //using for validation
	caller          kernel.Principal
	handle          kernel.UUID
	scheduledAt     time.Time
	durationMinutes int
	depart          string
	destination     string

	guard guard.ConstructorGuard
}

// NewInitializeFlightCommand creates a command to initialize a flight.
func NewInitializeFlightCommand(
	caller kernel.Principal, handle kernel.UUID,
	scheduledAt time.Time, durationMinutes int,
	depart, destination string,
) (InitializeFlightCommand, error) {
	command := InitializeFlightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setHandle(handle),
		command.setPlan(scheduledAt, durationMinutes, depart, destination),
	); err != nil {
		return InitializeFlightCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c InitializeFlightCommand) Validate() error {
	return c.guard.Validate(ErrInitializeFlightCommandIsNotConstructed)
}

// Caller returns the initializing pilot.
func (c InitializeFlightCommand) Caller() kernel.Principal {
	return c.caller
}

// FlightHandle returns the flight to initialize.
func (c InitializeFlightCommand) FlightHandle() kernel.UUID {
	return c.handle
}

// ScheduledAt returns the planned departure time.
func (c InitializeFlightCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

// DurationMinutes returns the planned flight duration.
func (c InitializeFlightCommand) DurationMinutes() int {
	return c.durationMinutes
}

// Depart returns the departure point description.
func (c InitializeFlightCommand) Depart() string {
	return c.depart
}

// Destination returns the arrival point description.
func (c InitializeFlightCommand) Destination() string {
	return c.destination
}

func (c *InitializeFlightCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *InitializeFlightCommand) setHandle(handle kernel.UUID) error {
	if err := handle.Validate(); err != nil {
		return err
	}

	c.handle = handle
	return nil
}

func (c *InitializeFlightCommand) setPlan(scheduledAt time.Time, durationMinutes int, depart, destination string) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduled time")
	}
	if durationMinutes <= 0 {
		return errs.NewValueIsInvalidError("flight duration")
	}
	if depart == "" {
		return errs.NewValueIsRequiredError("depart")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.scheduledAt = scheduledAt
	c.durationMinutes = durationMinutes
	c.depart = depart
	c.destination = destination
	return nil
}
