package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"starwings/internal/core/application/usecases/commands"
	"starwings/internal/core/application/usecases/queries"
	"starwings/internal/core/domain/model/delivery"
	"starwings/internal/core/domain/model/kernel"
)

// NewDeliveryRequest is the body of the delivery registration endpoint.
type NewDeliveryRequest struct {
	SupplierOrderID string `json:"supplierOrderId"`
	From            string `json:"from"`
	FromPrincipal   string `json:"fromPrincipal"`
	To              string `json:"to"`
	ToPrincipal     string `json:"toPrincipal"`
	FromHubID       string `json:"fromHubId"`
	ToHubID         string `json:"toHubId"`
}

// DeliveryCreatedResponse returns the deterministic id of a new delivery.
type DeliveryCreatedResponse struct {
	ID string `json:"id"`
}

// DeliveryStatusRequest sets the progress marker of a delivery.
type DeliveryStatusRequest struct {
	Status int `json:"status"`
}

// GetAllDeliveries handles GET /api/v1/deliveries.
//
//	@Summary	List every delivery
//	@Tags		deliveries
//	@Produce	json
//	@Param		X-Principal	header	string	true	"caller identity"
//	@Success	200	{array}		queries.DeliveryResponse
//	@Failure	403	{object}	Error
//	@Router		/deliveries [get]
func (s *Server) GetAllDeliveries(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetAllDeliveriesQuery(caller)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.queries.GetAllDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// GetDelivery handles GET /api/v1/deliveries/:id.
//
//	@Summary	Get one delivery
//	@Tags		deliveries
//	@Produce	json
//	@Param		X-Principal	header	string	true	"caller identity"
//	@Param		id	path		string	true	"delivery id"
//	@Success	200	{object}	queries.DeliveryResponse
//	@Failure	403	{object}	Error
//	@Router		/deliveries/{id} [get]
func (s *Server) GetDelivery(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetDeliveryQuery(caller, ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.queries.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// CreateDelivery handles POST /api/v1/deliveries.
//
//	@Summary	Register a delivery
//	@Tags		deliveries
//	@Accept		json
//	@Produce	json
//	@Param		X-Principal	header		string				true	"caller identity"
//	@Param		request		body		NewDeliveryRequest	true	"delivery"
//	@Success	201			{object}	DeliveryCreatedResponse
//	@Router		/deliveries [post]
func (s *Server) CreateDelivery(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	var request NewDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fromPrincipal, err := kernel.NewPrincipal(request.FromPrincipal)
	if err != nil {
		return fail(ctx, err)
	}
	toPrincipal, err := kernel.NewPrincipal(request.ToPrincipal)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(caller,
		request.SupplierOrderID,
		request.From, fromPrincipal,
		request.To, toPrincipal,
		request.FromHubID, request.ToHubID)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.CreateDelivery.Handle(ctx.Request().Context(), &cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, DeliveryCreatedResponse{ID: cmd.DeliveryID()})
}

// SetDeliveryStatus handles PUT /api/v1/deliveries/:id/status.
//
//	@Summary	Set the progress marker of a delivery
//	@Tags		deliveries
//	@Accept		json
//	@Param		X-Principal	header	string					true	"caller identity"
//	@Param		id			path	string					true	"delivery id"
//	@Param		request		body	DeliveryStatusRequest	true	"new status"
//	@Success	204
//	@Router		/deliveries/{id}/status [put]
func (s *Server) SetDeliveryStatus(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	var request DeliveryStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetDeliveryStatusCommand(caller,
		ctx.Param("id"), delivery.Status(request.Status))
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.SetDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
