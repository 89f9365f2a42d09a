package commands

import (
	"context"
)

// PickUpParcelCommandHandler handles parcel pickup.
// The caller must be the flight's drone.
type PickUpParcelCommandHandler struct {
	uowFactory FlightUoWFactory
}

// NewPickUpParcelCommandHandler creates a handler for parcel pickup.
func NewPickUpParcelCommandHandler(uowFactory FlightUoWFactory) PickUpParcelCommandHandler {
	return PickUpParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller, records custody and persists the flight
// within a transaction. A repeated pickup is PreconditionFailed.
func (h *PickUpParcelCommandHandler) Handle(ctx context.Context, cmd PickUpParcelCommand) error {
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

	if err = record.PickUpParcel(); err != nil {
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
