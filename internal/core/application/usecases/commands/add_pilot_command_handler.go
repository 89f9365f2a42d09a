package commands

import (
	"context"
	"errors"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/crew"
	"starwings/internal/pkg/errs"
)

// AddPilotCommandHandler handles pilot roster additions.
// The caller must hold ADMIN_ROLE.
type AddPilotCommandHandler struct {
	uowFactory CrewUoWFactory
}

// NewAddPilotCommandHandler creates a handler for pilot additions.
func NewAddPilotCommandHandler(uowFactory CrewUoWFactory) AddPilotCommandHandler {
	return AddPilotCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller and adds or reinstates the pilot within a
// transaction. An unknown principal gets the next free slot; a soft-deleted
// one gets its original slot back; a live one is AlreadyExists.
func (h *AddPilotCommandHandler) Handle(ctx context.Context, cmd AddPilotCommand) error {
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
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		index, nextErr := crewRepo.NextPilotIndex(ctx)
		if nextErr != nil {
			return nextErr
		}
		pilot, err = crew.NewPilot(index, cmd.Principal(), cmd.Name())
		if err != nil {
			return err
		}
		if err = crewRepo.AddPilot(ctx, pilot); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = pilot.Reinstate(cmd.Name()); err != nil {
			return err
		}
		if err = crewRepo.UpdatePilot(ctx, pilot); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
