package commands

import (
	"context"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/flight"
	"starwings/internal/pkg/errs"
)

// InitializeFlightCommandHandler handles the second phase of flight creation.
// The caller must hold PILOT_ROLE and be the flight's allocated pilot. The
// handler snapshots both crew entries and copies the dossier's air risks into
// the flight, all in one transaction.
type InitializeFlightCommandHandler struct {
	uowFactory UoWFactory
}

// NewInitializeFlightCommandHandler creates a handler for flight initialization.
func NewInitializeFlightCommandHandler(uowFactory UoWFactory) InitializeFlightCommandHandler {
	return InitializeFlightCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller, fixes the plan and persists the initialized
// flight. A second initialization is PreconditionFailed.
func (h *InitializeFlightCommandHandler) Handle(ctx context.Context, cmd InitializeFlightCommand) error {
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
	if err = registry.RequireRole(cmd.Caller(), access.PilotRole); err != nil {
		return err
	}

	flightRepo := uow.FlightRepository()
	record, err := flightRepo.Get(ctx, cmd.FlightHandle())
	if err != nil {
		return err
	}
	if !record.PilotPrincipal().IsEqual(cmd.Caller()) {
		return errs.NewAccessRefusedError(cmd.Caller().String(), "flight pilot")
	}

	crewRepo := uow.CrewRepository()
	pilot, err := crewRepo.GetPilot(ctx, record.PilotPrincipal())
	if err != nil {
		return err
	}
	drone, err := crewRepo.GetDrone(ctx, record.DronePrincipal())
	if err != nil {
		return err
	}
	dossier, err := uow.ConopsRepository().Get(ctx, record.ConopsID())
	if err != nil {
		return err
	}

	data := flight.FlightData{
		ScheduledAt:     cmd.ScheduledAt(),
		DurationMinutes: cmd.DurationMinutes(),
		Depart:          cmd.Depart(),
		Destination:     cmd.Destination(),
	}
	if err = record.Initialize(data, pilot.Snapshot(), drone.Snapshot(), dossier.AirRisks()); err != nil {
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
