package commands

import (
	"context"
)

// CompleteFlightCheckCommandHandler handles checklist completion.
// The caller must be the flight's pilot.
type CompleteFlightCheckCommandHandler struct {
	uowFactory FlightUoWFactory
}

// NewCompleteFlightCheckCommandHandler creates a handler for checklist completion.
func NewCompleteFlightCheckCommandHandler(uowFactory FlightUoWFactory) CompleteFlightCheckCommandHandler {
	return CompleteFlightCheckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller, ticks the requested item and persists the
// flight within a transaction.
func (h *CompleteFlightCheckCommandHandler) Handle(ctx context.Context, cmd CompleteFlightCheckCommand) error {
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

	if cmd.Postflight() {
		err = record.CompletePostFlightCheck(cmd.Check())
	} else {
		err = record.CompletePreFlightCheck(cmd.Check())
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
