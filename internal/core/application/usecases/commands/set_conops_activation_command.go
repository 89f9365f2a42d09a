package commands

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

var ErrSetConopsActivationCommandIsNotConstructed = errors.New(
	"SetConopsActivationCommand must be created via NewSetConopsActivationCommand constructor",
)

// SetConopsActivationCommand represents a request to enable or disable a
// route dossier. Admin-gated; the flip is idempotent but always emits its
// activation event.
type SetConopsActivationCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	conopsID  int
	activated bool

	guard guard.ConstructorGuard
}

// NewSetConopsActivationCommand creates a command to flip a dossier's
// activation flag.
func NewSetConopsActivationCommand(caller kernel.Principal, conopsID int, activated bool) (SetConopsActivationCommand, error) {
	command := SetConopsActivationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setConopsID(conopsID),
	); err != nil {
		return SetConopsActivationCommand{}, err
	}

	command.activated = activated
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetConopsActivationCommand) Validate() error {
	return c.guard.Validate(ErrSetConopsActivationCommandIsNotConstructed)
}

// Caller returns the principal requesting the flip.
func (c SetConopsActivationCommand) Caller() kernel.Principal {
	return c.caller
}

// ConopsID returns the dossier id.
func (c SetConopsActivationCommand) ConopsID() int {
	return c.conopsID
}

// Activated returns the requested activation state.
func (c SetConopsActivationCommand) Activated() bool {
	return c.activated
}

func (c *SetConopsActivationCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *SetConopsActivationCommand) setConopsID(conopsID int) error {
	if conopsID <= 0 {
		return errs.NewValueIsInvalidError("conops id")
	}

	c.conopsID = conopsID
	return nil
}
