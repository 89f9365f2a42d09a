package commands

import (
	"context"
)

// SetAirRiskValidationCommandHandler handles air risk clearance toggles.
// The caller must be the flight's pilot.
type SetAirRiskValidationCommandHandler struct {
	uowFactory FlightUoWFactory
}

// NewSetAirRiskValidationCommandHandler creates a handler for clearance toggles.
func NewSetAirRiskValidationCommandHandler(uowFactory FlightUoWFactory) SetAirRiskValidationCommandHandler {
	return SetAirRiskValidationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller, toggles the clearance and persists the flight
// within a transaction. An id beyond the embedded list is ObjectNotFound.
func (h *SetAirRiskValidationCommandHandler) Handle(ctx context.Context, cmd SetAirRiskValidationCommand) error {
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

	record, err := pilotFlight(ctx, uow, cmd.Caller(), cmd.FlightHandle())
	if err != nil {
		return err
	}

	if cmd.Validated() {
		err = record.ValidateAirRisk(cmd.AirRiskID())
	} else {
		err = record.CancelAirRisk(cmd.AirRiskID())
	}
	if err != nil {
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
