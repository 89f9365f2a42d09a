package commands

import (
	"context"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
)

// pilotFlight loads a flight for an operation reserved to its pilot. The
// caller must hold PILOT_ROLE and be the principal bound at allocation.
func pilotFlight(ctx context.Context, uow FlightUoW, caller kernel.Principal, handle kernel.UUID) (*flight.Flight, error) {
	registry, err := uow.AccessRepository().Get(ctx)
	if err != nil {
		return nil, err
	}
	if err = registry.RequireRole(caller, access.PilotRole); err != nil {
		return nil, err
	}

	record, err := uow.FlightRepository().Get(ctx, handle)
	if err != nil {
		return nil, err
	}
	if !record.PilotPrincipal().IsEqual(caller) {
		return nil, errs.NewAccessRefusedError(caller.String(), "flight pilot")
	}
	return record, nil
}

// droneFlight loads a flight for an operation reserved to its drone.
func droneFlight(ctx context.Context, uow FlightUoW, caller kernel.Principal, handle kernel.UUID) (*flight.Flight, error) {
	registry, err := uow.AccessRepository().Get(ctx)
	if err != nil {
		return nil, err
	}
	if err = registry.RequireRole(caller, access.DroneRole); err != nil {
		return nil, err
	}

	record, err := uow.FlightRepository().Get(ctx, handle)
	if err != nil {
		return nil, err
	}
	if !record.DronePrincipal().IsEqual(caller) {
		return nil, errs.NewAccessRefusedError(caller.String(), "flight drone")
	}
	return record, nil
}
