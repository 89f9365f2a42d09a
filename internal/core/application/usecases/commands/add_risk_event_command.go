package commands

import (
	"errors"
	"time"

	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

var ErrAddRiskEventCommandIsNotConstructed = errors.New(
	"AddRiskEventCommand must be created via NewAddRiskEventCommand constructor",
)

// AddRiskEventCommand represents the flight's drone reporting an in-flight
// incident. Incidents append unconditionally to the log.
type AddRiskEventCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Principal
	handle kernel.UUID
	at     time.Time
	risk   flight.Risk

	guard guard.ConstructorGuard
}

// NewAddRiskEventCommand creates a command to report an incident.
func NewAddRiskEventCommand(caller kernel.Principal, handle kernel.UUID, at time.Time, risk flight.Risk) (AddRiskEventCommand, error) {
	command := AddRiskEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setHandle(handle),
		command.setIncident(at, risk),
	); err != nil {
		return AddRiskEventCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddRiskEventCommand) Validate() error {
	return c.guard.Validate(ErrAddRiskEventCommandIsNotConstructed)
}

// Caller returns the reporting drone.
func (c AddRiskEventCommand) Caller() kernel.Principal {
	return c.caller
}

// FlightHandle returns the target flight.
func (c AddRiskEventCommand) FlightHandle() kernel.UUID {
	return c.handle
}

// At returns the incident timestamp.
func (c AddRiskEventCommand) At() time.Time {
	return c.at
}

// Risk returns the incident category.
func (c AddRiskEventCommand) Risk() flight.Risk {
	return c.risk
}

func (c *AddRiskEventCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *AddRiskEventCommand) setHandle(handle kernel.UUID) error {
	if err := handle.Validate(); err != nil {
		return err
	}

	c.handle = handle
	return nil
}

func (c *AddRiskEventCommand) setIncident(at time.Time, risk flight.Risk) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("incident time")
	}
	if err := risk.Validate(); err != nil {
		return err
	}

	c.at = at
	c.risk = risk
	return nil
}
