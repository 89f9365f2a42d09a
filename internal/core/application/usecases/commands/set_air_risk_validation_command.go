package commands

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

var ErrSetAirRiskValidationCommandIsNotConstructed = errors.New(
	"SetAirRiskValidationCommand must be created via NewSetAirRiskValidationCommand constructor",
)

// SetAirRiskValidationCommand represents the flight's pilot clearing (or
// withdrawing clearance of) one embedded air risk. All risks must be cleared
// before either tracker can enter Flying.
type SetAirRiskValidationCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	handle    kernel.UUID
	airRiskID int
	validated bool

	guard guard.ConstructorGuard
}

// NewSetAirRiskValidationCommand creates a command to toggle an air risk
// clearance.
func NewSetAirRiskValidationCommand(caller kernel.Principal, handle kernel.UUID, airRiskID int, validated bool) (SetAirRiskValidationCommand, error) {
	command := SetAirRiskValidationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setHandle(handle),
		command.setAirRiskID(airRiskID),
	); err != nil {
		return SetAirRiskValidationCommand{}, err
	}

	command.validated = validated
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAirRiskValidationCommand) Validate() error {
	return c.guard.Validate(ErrSetAirRiskValidationCommandIsNotConstructed)
}

// Caller returns the pilot toggling the clearance.
func (c SetAirRiskValidationCommand) Caller() kernel.Principal {
	return c.caller
}

// FlightHandle returns the target flight.
func (c SetAirRiskValidationCommand) FlightHandle() kernel.UUID {
	return c.handle
}

// AirRiskID returns the position of the risk in the flight's embedded list.
func (c SetAirRiskValidationCommand) AirRiskID() int {
	return c.airRiskID
}

// Validated returns the requested clearance state.
func (c SetAirRiskValidationCommand) Validated() bool {
	return c.validated
}

func (c *SetAirRiskValidationCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *SetAirRiskValidationCommand) setHandle(handle kernel.UUID) error {
	if err := handle.Validate(); err != nil {
		return err
	}

	c.handle = handle
	return nil
}

func (c *SetAirRiskValidationCommand) setAirRiskID(airRiskID int) error {
	if airRiskID < 0 {
		return errs.NewValueIsInvalidError("air risk id")
	}

	c.airRiskID = airRiskID
	return nil
}
