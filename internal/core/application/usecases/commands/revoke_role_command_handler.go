package commands

import (
	"context"
)

// RevokeRoleCommandHandler handles role revocations against the registry.
// The caller must hold the admin role of the revoked role.
type RevokeRoleCommandHandler struct {
	uowFactory AccessUoWFactory
}

// NewRevokeRoleCommandHandler creates a handler for role revocations.
func NewRevokeRoleCommandHandler(uowFactory AccessUoWFactory) RevokeRoleCommandHandler {
	return RevokeRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the revoke command within a transaction.
func (h *RevokeRoleCommandHandler) Handle(ctx context.Context, cmd RevokeRoleCommand) error {
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

	if err = registry.RevokeRole(cmd.Caller(), cmd.Role(), cmd.Principal()); err != nil {
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
