package commands

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

var ErrAllocateFlightCommandIsNotConstructed = errors.New(
	"AllocateFlightCommand must be created via NewAllocateFlightCommand constructor",
)

// AllocateFlightCommand represents the first phase of flight creation: a
// pilot reserves a deterministic handle for a delivery, a route dossier and
// a drone. The caller is the flight's pilot.
//
// Example:
//
//	cmd, err := NewAllocateFlightCommand(pilot, deliveryID, conopsID, drone, "salt-001")
//	if err != nil {
//	    return fmt.Errorf("invalid allocation: %w", err)
//	}
//
//	handler := NewAllocateFlightCommandHandler(uowFactory, handleFactory)
//	if err := handler.Handle(ctx, &cmd); err != nil {
//	    return fmt.Errorf("allocation failed: %w", err)
//	}
//	fmt.Printf("Allocated flight %s", cmd.Handle())
type AllocateFlightCommand struct { //nolint:recvcheck //using for validation
	caller         kernel.Principal
	deliveryID     string
	conopsID       int
	dronePrincipal kernel.Principal
	salt           string

	handle kernel.UUID

	guard guard.ConstructorGuard
}

// NewAllocateFlightCommand creates a command to allocate a flight handle.
func NewAllocateFlightCommand(caller kernel.Principal, deliveryID string, conopsID int, dronePrincipal kernel.Principal, salt string) (AllocateFlightCommand, error) {
	command := AllocateFlightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setDeliveryID(deliveryID),
		command.setConopsID(conopsID),
		command.setDronePrincipal(dronePrincipal),
		command.setSalt(salt),
	); err != nil {
		return AllocateFlightCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AllocateFlightCommand) Validate() error {
	return c.guard.Validate(ErrAllocateFlightCommandIsNotConstructed)
}

// Caller returns the allocating pilot.
func (c AllocateFlightCommand) Caller() kernel.Principal {
	return c.caller
}

// DeliveryID returns the delivery the flight will serve.
func (c AllocateFlightCommand) DeliveryID() string {
	return c.deliveryID
}

// ConopsID returns the route dossier the flight operates under.
func (c AllocateFlightCommand) ConopsID() int {
	return c.conopsID
}

// DronePrincipal returns the drone assigned to the flight.
func (c AllocateFlightCommand) DronePrincipal() kernel.Principal {
	return c.dronePrincipal
}

// Salt returns the caller-chosen handle salt.
func (c AllocateFlightCommand) Salt() string {
	return c.salt
}

// Handle returns the handle assigned during handling. Zero until handled.
func (c AllocateFlightCommand) Handle() kernel.UUID {
	return c.handle
}

func (c *AllocateFlightCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *AllocateFlightCommand) setDeliveryID(deliveryID string) error {
	if deliveryID == "" {
		return errs.NewValueIsRequiredError("delivery id")
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AllocateFlightCommand) setConopsID(conopsID int) error {
	if conopsID <= 0 {
		return errs.NewValueIsInvalidError("conops id")
	}

	c.conopsID = conopsID
	return nil
}

func (c *AllocateFlightCommand) setDronePrincipal(dronePrincipal kernel.Principal) error {
	if err := dronePrincipal.Validate(); err != nil {
		return err
	}

	c.dronePrincipal = dronePrincipal
	return nil
}

func (c *AllocateFlightCommand) setSalt(salt string) error {
	if salt == "" {
		return errs.NewValueIsRequiredError("salt")
	}

	c.salt = salt
	return nil
}
