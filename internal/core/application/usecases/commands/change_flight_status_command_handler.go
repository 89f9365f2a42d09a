package commands

import (
	"context"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/pkg/errs"
)

// ChangeFlightStatusCommandHandler handles status tracker advances.
// The caller must hold PILOT_ROLE or DRONE_ROLE and be the matching crew
// member of the flight; each crew member moves its own tracker only.
type ChangeFlightStatusCommandHandler struct {
	uowFactory FlightUoWFactory
}

// NewChangeFlightStatusCommandHandler creates a handler for tracker advances.
func NewChangeFlightStatusCommandHandler(uowFactory FlightUoWFactory) ChangeFlightStatusCommandHandler {
	return ChangeFlightStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller, applies the transition to the caller's own
// tracker and persists the flight within a transaction.
func (h *ChangeFlightStatusCommandHandler) Handle(ctx context.Context, cmd ChangeFlightStatusCommand) error {
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
	if err = registry.RequireAnyRole(cmd.Caller(), access.PilotRole, access.DroneRole); err != nil {
		return err
	}

	flightRepo := uow.FlightRepository()
	record, err := flightRepo.Get(ctx, cmd.FlightHandle())
	if err != nil {
		return err
	}

	switch {
	case record.PilotPrincipal().IsEqual(cmd.Caller()):
		err = record.ChangePilotStatus(cmd.Status())
	case record.DronePrincipal().IsEqual(cmd.Caller()):
		err = record.ChangeDroneStatus(cmd.Status())
	default:
		err = errs.NewAccessRefusedError(cmd.Caller().String(), "flight crew")
	}
	if err != nil {
		return err
	}

	if err = flightRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
