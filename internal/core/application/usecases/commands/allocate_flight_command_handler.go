package commands

import (
	"context"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/services"
	"starwings/internal/pkg/errs"
)

// AllocateFlightCommandHandler handles the first phase of flight creation.
// The caller must hold PILOT_ROLE and appear on the roster together with the
// assigned drone; the referenced delivery and dossier must exist. All checks,
// the handle reservation and both roster history appends happen in one
// transaction.
type AllocateFlightCommandHandler struct {
	uowFactory    UoWFactory
	handleFactory services.FlightHandleFactory
}

// NewAllocateFlightCommandHandler creates a handler for flight allocation.
func NewAllocateFlightCommandHandler(uowFactory UoWFactory, handleFactory services.FlightHandleFactory) AllocateFlightCommandHandler {
	return AllocateFlightCommandHandler{
		uowFactory:    uowFactory,
		handleFactory: handleFactory,
	}
}

// Handle validates the payload against the registries, derives the
// deterministic handle, persists the pending flight and records it on both
// crew members' histories. A salt reuse surfaces as AlreadyExists. The
// assigned handle is written back into the command.
func (h *AllocateFlightCommandHandler) Handle(ctx context.Context, cmd *AllocateFlightCommand) error {
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

	if _, err = uow.DeliveryRepository().Get(ctx, cmd.DeliveryID()); err != nil {
		return err
	}
	if _, err = uow.ConopsRepository().Get(ctx, cmd.ConopsID()); err != nil {
		return err
	}

	crewRepo := uow.CrewRepository()
	pilot, err := crewRepo.GetPilot(ctx, cmd.Caller())
	if err != nil {
		return err
	}
	if pilot.IsDeleted() {
		return errs.NewObjectNotFoundError("pilotPrincipal", cmd.Caller().String())
	}
	drone, err := crewRepo.GetDrone(ctx, cmd.DronePrincipal())
	if err != nil {
		return err
	}
	if drone.IsDeleted() {
		return errs.NewObjectNotFoundError("dronePrincipal", cmd.DronePrincipal().String())
	}

	handle, err := h.handleFactory.Handle(cmd.Salt(), services.FlightAllocation{
		DeliveryID:     cmd.DeliveryID(),
		ConopsID:       cmd.ConopsID(),
		PilotPrincipal: cmd.Caller(),
		DronePrincipal: cmd.DronePrincipal(),
	})
	if err != nil {
		return err
	}

	flightRepo := uow.FlightRepository()
	taken, err := flightRepo.Exists(ctx, handle)
	if err != nil {
		return err
	}
	if taken {
		return errs.NewAlreadyExistsError("flight handle", handle.String())
	}

	record, err := flight.AllocateFlight(handle, cmd.DeliveryID(), cmd.ConopsID(), cmd.Caller(), cmd.DronePrincipal())
	if err != nil {
		return err
	}
	if err = flightRepo.Add(ctx, record); err != nil {
		return err
	}

	if err = pilot.RecordFlight(handle); err != nil {
		return err
	}
	if err = crewRepo.UpdatePilot(ctx, pilot); err != nil {
		return err
	}
	if err = drone.RecordFlight(handle); err != nil {
		return err
	}
	if err = crewRepo.UpdateDrone(ctx, drone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	cmd.handle = handle
	return nil
}
