package commands

import (
	"context"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler handles delivery registration.
// The caller must hold ADMIN_ROLE.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery registration.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller, reserves the next creation sequence number,
// derives the deterministic delivery id and persists the record, all in one
// transaction. The assigned id is written back into the command.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd *CreateDeliveryCommand) error {
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
	if err = registry.RequireRole(cmd.Caller(), access.AdminRole); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	seq, err := deliveryRepo.NextSequence(ctx)
	if err != nil {
		return err
	}

	id := delivery.DeliveryID(seq, cmd.SupplierOrderID())
	record, err := delivery.NewDelivery(
		id, cmd.SupplierOrderID(),
		cmd.From(), cmd.FromPrincipal(),
		cmd.To(), cmd.ToPrincipal(),
		cmd.FromHubID(), cmd.ToHubID(),
	)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	cmd.deliveryID = id
	return nil
}
