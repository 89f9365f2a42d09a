package commands

import (
	"context"
)

// AddRiskEventCommandHandler handles in-flight incident reports.
// The caller must be the flight's drone.
type AddRiskEventCommandHandler struct {
	uowFactory FlightUoWFactory
}

// NewAddRiskEventCommandHandler creates a handler for incident reports.
func NewAddRiskEventCommandHandler(uowFactory FlightUoWFactory) AddRiskEventCommandHandler {
	return AddRiskEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller, appends the incident and persists the flight
// within a transaction.
func (h *AddRiskEventCommandHandler) Handle(ctx context.Context, cmd AddRiskEventCommand) error {
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

	if err = record.AddRiskEvent(cmd.At(), cmd.Risk()); err != nil {
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
