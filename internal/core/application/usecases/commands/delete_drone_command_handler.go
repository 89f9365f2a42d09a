package commands

import (
	"context"

	"starwings/internal/core/domain/model/access"
)

// DeleteDroneCommandHandler handles drone soft-deletions.
// The caller must hold ADMIN_ROLE.
type DeleteDroneCommandHandler struct {
	uowFactory CrewUoWFactory
}

// NewDeleteDroneCommandHandler creates a handler for drone deletions.
func NewDeleteDroneCommandHandler(uowFactory CrewUoWFactory) DeleteDroneCommandHandler {
	return DeleteDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller and soft-deletes the drone within a
// transaction. Unknown or already-deleted principals are ObjectNotFound.
func (h *DeleteDroneCommandHandler) Handle(ctx context.Context, cmd DeleteDroneCommand) error {
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

	crewRepo := uow.CrewRepository()
	drone, err := crewRepo.GetDrone(ctx, cmd.Principal())
	if err != nil {
		return err
	}

	if err = drone.Delete(); err != nil {
		return err
	}

	if err = crewRepo.UpdateDrone(ctx, drone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
