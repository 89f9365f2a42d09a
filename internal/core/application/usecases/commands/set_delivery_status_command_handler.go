package commands

import (
	"context"

	"starwings/internal/core/domain/model/access"
)

// SetDeliveryStatusCommandHandler handles delivery status overwrites.
// The caller may hold any known role; every participant in the chain reports
// progress on deliveries.
type SetDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewSetDeliveryStatusCommandHandler creates a handler for status overwrites.
func NewSetDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) SetDeliveryStatusCommandHandler {
	return SetDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller, loads the delivery, overwrites its status and
// persists the result within a transaction.
func (h *SetDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd SetDeliveryStatusCommand) error {
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
	if err = registry.RequireAnyRole(cmd.Caller(), access.KnownRoles()...); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	record, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = record.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
