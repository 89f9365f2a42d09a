package commands

import (
	"context"
	"errors"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/crew"
	"starwings/internal/pkg/errs"
)

// AddDroneCommandHandler handles drone roster additions.
// The caller must hold ADMIN_ROLE.
type AddDroneCommandHandler struct {
	uowFactory CrewUoWFactory
}

// NewAddDroneCommandHandler creates a handler for drone additions.
func NewAddDroneCommandHandler(uowFactory CrewUoWFactory) AddDroneCommandHandler {
	return AddDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller and adds or reinstates the drone within a
// transaction.
func (h *AddDroneCommandHandler) Handle(ctx context.Context, cmd AddDroneCommand) error {
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
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		index, nextErr := crewRepo.NextDroneIndex(ctx)
		if nextErr != nil {
			return nextErr
		}
		drone, err = crew.NewDrone(index, cmd.Principal(), cmd.DroneID(), cmd.DroneType())
		if err != nil {
			return err
		}
		if err = crewRepo.AddDrone(ctx, drone); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = drone.Reinstate(cmd.DroneID(), cmd.DroneType()); err != nil {
			return err
		}
		if err = crewRepo.UpdateDrone(ctx, drone); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
