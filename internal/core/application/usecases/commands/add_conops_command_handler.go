package commands

import (
	"context"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/conops"
)

// AddConopsCommandHandler handles route dossier registration.
// The caller must hold ADMIN_ROLE.
type AddConopsCommandHandler struct {
	uowFactory ConopsUoWFactory
}

// NewAddConopsCommandHandler creates a handler for dossier registration.
func NewAddConopsCommandHandler(uowFactory ConopsUoWFactory) AddConopsCommandHandler {
	return AddConopsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authorizes the caller, reserves the next dossier id, creates the
// record and persists it, all in one transaction. The assigned id is written
// back into the command.
func (h *AddConopsCommandHandler) Handle(ctx context.Context, cmd *AddConopsCommand) error {
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

	conopsRepo := uow.ConopsRepository()
	id, err := conopsRepo.NextID(ctx)
	if err != nil {
		return err
	}

	dossier, err := conops.NewConops(
		id,
		cmd.Name(), cmd.StartingPoint(), cmd.EndPoint(), cmd.CrossRoad(), cmd.ExclusionZone(),
		cmd.AirRisks(),
		cmd.GRC(), cmd.ARC(),
	)
	if err != nil {
		return err
	}

	if err = conopsRepo.Add(ctx, dossier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	cmd.conopsID = id
	return nil
}
