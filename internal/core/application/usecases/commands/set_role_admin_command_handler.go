package commands

import (
	"context"
)

// SetRoleAdminCommandHandler handles admin-role delegation changes.
// The caller must hold the current admin role of the target role.
type SetRoleAdminCommandHandler struct {
	uowFactory AccessUoWFactory
}

// NewSetRoleAdminCommandHandler creates a handler for admin delegation changes.
func NewSetRoleAdminCommandHandler(uowFactory AccessUoWFactory) SetRoleAdminCommandHandler {
	return SetRoleAdminCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delegation change within a transaction.
func (h *SetRoleAdminCommandHandler) Handle(ctx context.Context, cmd SetRoleAdminCommand) error {
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

	if err = registry.SetRoleAdmin(cmd.Caller(), cmd.Role(), cmd.AdminRole()); err != nil {
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
