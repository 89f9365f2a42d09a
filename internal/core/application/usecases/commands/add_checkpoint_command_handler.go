package commands

import (
	"context"
)

// AddCheckpointCommandHandler handles position reports.
// The caller must be the flight's drone.
type AddCheckpointCommandHandler struct {
	uowFactory FlightUoWFactory
}

// NewAddCheckpointCommandHandler creates a handler for position reports.
func NewAddCheckpointCommandHandler(uowFactory FlightUoWFactory) AddCheckpointCommandHandler {
	return AddCheckpointCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller, appends the report and persists the flight
// within a transaction.
func (h *AddCheckpointCommandHandler) Handle(ctx context.Context, cmd AddCheckpointCommand) error {
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

	record, err := droneFlight(ctx, uow, cmd.Caller(), cmd.FlightHandle())
	if err != nil {
		return err
	}

	if err = record.AddCheckpoint(cmd.At(), cmd.Latitude(), cmd.Longitude()); err != nil {
		return err
	}

	if err = uow.FlightRepository().Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
