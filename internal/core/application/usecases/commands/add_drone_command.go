package commands

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

var ErrAddDroneCommandIsNotConstructed = errors.New(
	"AddDroneCommand must be created via NewAddDroneCommand constructor",
)

// AddDroneCommand represents a request to add a drone to the roster.
// Admin-gated, with the same slot-reuse rules as pilots.
type AddDroneCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	principal kernel.Principal
	droneID   string
	droneType string

	guard guard.ConstructorGuard
}

// NewAddDroneCommand creates a command to add a drone.
func NewAddDroneCommand(caller, principal kernel.Principal, droneID, droneType string) (AddDroneCommand, error) {
	command := AddDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setPrincipal(principal),
		command.setDroneID(droneID),
		command.setDroneType(droneType),
	); err != nil {
		return AddDroneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDroneCommand) Validate() error {
	return c.guard.Validate(ErrAddDroneCommandIsNotConstructed)
}

// Caller returns the principal requesting the addition.
func (c AddDroneCommand) Caller() kernel.Principal {
	return c.caller
}

// Principal returns the drone's identity.
func (c AddDroneCommand) Principal() kernel.Principal {
	return c.principal
}

// DroneID returns the operator-assigned identifier.
func (c AddDroneCommand) DroneID() string {
	return c.droneID
}

// DroneType returns the airframe model.
func (c AddDroneCommand) DroneType() string {
	return c.droneType
}

func (c *AddDroneCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *AddDroneCommand) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *AddDroneCommand) setDroneID(droneID string) error {
	if droneID == "" {
		return errs.NewValueIsRequiredError("drone id")
	}

	c.droneID = droneID
	return nil
}

func (c *AddDroneCommand) setDroneType(droneType string) error {
	if droneType == "" {
		return errs.NewValueIsRequiredError("drone type")
	}

	c.droneType = droneType
	return nil
}
