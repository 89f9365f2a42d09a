package commands

import (
	"context"

	"starwings/internal/core/domain/model/access"
)

// SetConopsActivationCommandHandler handles dossier activation flips.
// The caller must hold ADMIN_ROLE.
type SetConopsActivationCommandHandler struct {
	uowFactory ConopsUoWFactory
}

// NewSetConopsActivationCommandHandler creates a handler for activation flips.
func NewSetConopsActivationCommandHandler(uowFactory ConopsUoWFactory) SetConopsActivationCommandHandler {
	return SetConopsActivationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller, loads the dossier, flips its activation flag
// and persists the result within a transaction.
func (h *SetConopsActivationCommandHandler) Handle(ctx context.Context, cmd SetConopsActivationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry, err := uow.AccessRepository().Get(ctx)
	if err != nil {
		return err
	}
	if err = registry.RequireRole(cmd.Caller(), access.AdminRole); err != nil {
		return err
	}

	conopsRepo := uow.ConopsRepository()
	dossier, err := conopsRepo.Get(ctx, cmd.ConopsID())
	if err != nil {
		return err
	}

	if cmd.Activated() {
		dossier.Enable()
	} else {
		dossier.Disable()
	}

	if err = conopsRepo.Update(ctx, dossier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
