package commands

import (
	"context"

	"starwings/internal/core/domain/model/access"
)

// DeletePilotCommandHandler handles pilot soft-deletions.
// The caller must hold ADMIN_ROLE.
type DeletePilotCommandHandler struct {
	uowFactory CrewUoWFactory
}

// NewDeletePilotCommandHandler creates a handler for pilot deletions.
func NewDeletePilotCommandHandler(uowFactory CrewUoWFactory) DeletePilotCommandHandler {
	return DeletePilotCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller and soft-deletes the pilot within a
// transaction. Unknown or already-deleted principals are ObjectNotFound.
func (h *DeletePilotCommandHandler) Handle(ctx context.Context, cmd DeletePilotCommand) error {
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
	pilot, err := crewRepo.GetPilot(ctx, cmd.Principal())
	if err != nil {
		return err
	}

	if err = pilot.Delete(); err != nil {
		return err
	}

	if err = crewRepo.UpdatePilot(ctx, pilot); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
