package commands

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to register a parcel delivery.
// Admin-gated. The delivery id is derived by the handler from the registry's
// creation sequence and the supplier order id; the record always starts at
// NoInfo whatever the client submitted.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(admin, "ORDER-001",
//	    "Pharmacie Centrale", sender,
//	    "CHU Nord", recipient,
//	    "hub-13", "hub-04")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, &cmd); err != nil {
//	    return fmt.Errorf("failed to register delivery: %w", err)
//	}
//	fmt.Printf("Registered delivery %s", cmd.DeliveryID())
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	caller          kernel.Principal
	supplierOrderID string
	from            string
	fromPrincipal   kernel.Principal
	to              string
	toPrincipal     kernel.Principal
	fromHubID       string
	toHubID         string

	deliveryID string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a delivery.
func NewCreateDeliveryCommand(
	caller kernel.Principal,
	supplierOrderID string,
	from string, fromPrincipal kernel.Principal,
	to string, toPrincipal kernel.Principal,
	fromHubID, toHubID string,
) (CreateDeliveryCommand, error) {
	command := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setSupplierOrderID(supplierOrderID),
		command.setParties(from, fromPrincipal, to, toPrincipal),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}
	command.fromHubID = fromHubID
	command.toHubID = toHubID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// Caller returns the principal registering the delivery.
func (c CreateDeliveryCommand) Caller() kernel.Principal {
	return c.caller
}

// SupplierOrderID returns the supplier-side order reference.
func (c CreateDeliveryCommand) SupplierOrderID() string {
	return c.supplierOrderID
}

// From returns the sender's display name.
func (c CreateDeliveryCommand) From() string {
	return c.from
}

// FromPrincipal returns the sender's identity.
func (c CreateDeliveryCommand) FromPrincipal() kernel.Principal {
	return c.fromPrincipal
}

// To returns the recipient's display name.
func (c CreateDeliveryCommand) To() string {
	return c.to
}

// ToPrincipal returns the recipient's identity.
func (c CreateDeliveryCommand) ToPrincipal() kernel.Principal {
	return c.toPrincipal
}

// FromHubID returns the origin hub.
func (c CreateDeliveryCommand) FromHubID() string {
	return c.fromHubID
}

// ToHubID returns the destination hub.
func (c CreateDeliveryCommand) ToHubID() string {
	return c.toHubID
}

// DeliveryID returns the id assigned during handling. Empty until handled.
func (c CreateDeliveryCommand) DeliveryID() string {
	return c.deliveryID
}

func (c *CreateDeliveryCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CreateDeliveryCommand) setSupplierOrderID(supplierOrderID string) error {
	if supplierOrderID == "" {
		return errs.NewValueIsRequiredError("supplier order id")
	}

	c.supplierOrderID = supplierOrderID
	return nil
}

func (c *CreateDeliveryCommand) setParties(from string, fromPrincipal kernel.Principal, to string, toPrincipal kernel.Principal) error {
	if from == "" {
		return errs.NewValueIsRequiredError("from")
	}
	if to == "" {
		return errs.NewValueIsRequiredError("to")
	}
	if err := errors.Join(fromPrincipal.Validate(), toPrincipal.Validate()); err != nil {
		return err
	}

	c.from = from
	c.fromPrincipal = fromPrincipal
	c.to = to
	c.toPrincipal = toPrincipal
	return nil
}
