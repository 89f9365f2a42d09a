package commands

import (
	"context"
)

// CancelFlightCommandHandler handles pre-departure flight cancellation.
// The caller must be the flight's pilot.
type CancelFlightCommandHandler struct {
	uowFactory FlightUoWFactory
}

// NewCancelFlightCommandHandler creates a handler for flight cancellation.
func NewCancelFlightCommandHandler(uowFactory FlightUoWFactory) CancelFlightCommandHandler {
	return CancelFlightCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller and cancels the flight within a transaction.
func (h *CancelFlightCommandHandler) Handle(ctx context.Context, cmd CancelFlightCommand) error {
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

	if err = record.CancelByPilot(); err != nil {
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
