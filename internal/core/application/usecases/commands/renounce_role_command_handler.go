package commands

import (
	"context"
)

// RenounceRoleCommandHandler handles voluntary role renunciations.
type RenounceRoleCommandHandler struct {
	uowFactory AccessUoWFactory
}

// NewRenounceRoleCommandHandler creates a handler for role renunciations.
func NewRenounceRoleCommandHandler(uowFactory AccessUoWFactory) RenounceRoleCommandHandler {
	return RenounceRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the renounce command within a transaction.
func (h *RenounceRoleCommandHandler) Handle(ctx context.Context, cmd RenounceRoleCommand) error {
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

	accessRepo := uow.AccessRepository()
	registry, err := accessRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = registry.RenounceRole(cmd.Caller(), cmd.Role(), cmd.Principal()); err != nil {
		return err
	}

	if err = accessRepo.Save(ctx, registry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
