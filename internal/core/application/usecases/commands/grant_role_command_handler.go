package commands

import (
	"context"
)

// GrantRoleCommandHandler handles role grants against the registry.
// Authorization is delegated to the registry aggregate: the caller must hold
// the admin role of the granted role.
//
// Example:
//
//	handler := NewGrantRoleCommandHandler(uowFactory)
//	cmd, _ := NewGrantRoleCommand(admin, access.DroneRole, dronePrincipal)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("grant failed: %w", err)
//	}
type GrantRoleCommandHandler struct {
	uowFactory AccessUoWFactory
}

// NewGrantRoleCommandHandler creates a handler for role grants.
func NewGrantRoleCommandHandler(uowFactory AccessUoWFactory) GrantRoleCommandHandler {
	return GrantRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the grant command. Loads the registry, applies the grant
// and persists the result within a transaction. A grant of an already-held
// role commits without changes.
func (h *GrantRoleCommandHandler) Handle(ctx context.Context, cmd GrantRoleCommand) error {
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

	if err = registry.GrantRole(cmd.Caller(), cmd.Role(), cmd.Principal()); err != nil {
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
