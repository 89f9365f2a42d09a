package commands

import (
	"errors"

	"starwings/internal/core/domain/model/delivery"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

var ErrSetDeliveryStatusCommandIsNotConstructed = errors.New(
	"SetDeliveryStatusCommand must be created via NewSetDeliveryStatusCommand constructor",
)

// SetDeliveryStatusCommand represents a request to overwrite a delivery's
// status. Any principal holding a known role may do this, and the overwrite
// performs no legality check beyond the enum range: backwards corrections
// are an accepted use.
type SetDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Principal
	deliveryID string
	status     delivery.Status

	guard guard.ConstructorGuard
}

// NewSetDeliveryStatusCommand creates a command to overwrite a delivery status.
func NewSetDeliveryStatusCommand(caller kernel.Principal, deliveryID string, status delivery.Status) (SetDeliveryStatusCommand, error) {
	command := SetDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setDeliveryID(deliveryID),
		command.setStatus(status),
	); err != nil {
		return SetDeliveryStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryStatusCommandIsNotConstructed)
}

// Caller returns the principal requesting the overwrite.
func (c SetDeliveryStatusCommand) Caller() kernel.Principal {
	return c.caller
}

// DeliveryID returns the target delivery id.
func (c SetDeliveryStatusCommand) DeliveryID() string {
	return c.deliveryID
}

// Status returns the new status value.
func (c SetDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

func (c *SetDeliveryStatusCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *SetDeliveryStatusCommand) setDeliveryID(deliveryID string) error {
	if deliveryID == "" {
		return errs.NewValueIsRequiredError("delivery id")
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *SetDeliveryStatusCommand) setStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
