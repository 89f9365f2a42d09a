package commands

import (
	"context"
)

// DeliverParcelCommandHandler handles parcel delivery.
// The caller must be the flight's drone.
type DeliverParcelCommandHandler struct {
	uowFactory FlightUoWFactory
}

// NewDeliverParcelCommandHandler creates a handler for parcel delivery.
func NewDeliverParcelCommandHandler(uowFactory FlightUoWFactory) DeliverParcelCommandHandler {
	return DeliverParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller, records the delivery and persists the flight
// within a transaction. Delivery without prior pickup is PreconditionFailed.
func (h *DeliverParcelCommandHandler) Handle(ctx context.Context, cmd DeliverParcelCommand) error {
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

	if err = record.DeliverParcel(); err != nil {
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
