package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"starwings/internal/core/application/usecases/commands"
	"starwings/internal/core/application/usecases/queries"
	"starwings/internal/core/domain/model/kernel"
)

// NewPilotRequest is the body of the pilot registration endpoint.
type NewPilotRequest struct {
	Principal string `json:"principal"`
	Name      string `json:"name"`
}

// NewDroneRequest is the body of the drone registration endpoint.
type NewDroneRequest struct {
	Principal string `json:"principal"`
	DroneID   string `json:"droneId"`
	DroneType string `json:"droneType"`
}

func crewPrincipal(ctx echo.Context) (kernel.Principal, error) {
	principal, err := kernel.NewPrincipal(ctx.Param("principal"))
	if err != nil {
		return kernel.Principal{}, echo.NewHTTPError(http.StatusBadRequest,
			"principal path parameter is required")
	}
	return principal, nil
}

// GetPilots handles GET /api/v1/pilots.
//
//	@Summary	List the pilot roster, active and retired
//	@Tags		crew
//	@Produce	json
//	@Param		X-Principal	header	string	true	"caller identity"
//	@Success	200	{array}		queries.PilotResponse
//	@Failure	403	{object}	Error
//	@Router		/pilots [get]
func (s *Server) GetPilots(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetPilotsQuery(caller)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.queries.GetPilots.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// AddPilot handles POST /api/v1/pilots. Re-registering a retired pilot
// reinstates the existing roster slot.
//
//	@Summary	Register or reinstate a pilot
//	@Tags		crew
//	@Accept		json
//	@Param		X-Principal	header	string			true	"caller identity"
//	@Param		request		body	NewPilotRequest	true	"pilot"
//	@Success	204
//	@Router		/pilots [post]
func (s *Server) AddPilot(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	var request NewPilotRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	principal, err := kernel.NewPrincipal(request.Principal)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAddPilotCommand(caller, principal, request.Name)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.AddPilot.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeletePilot handles DELETE /api/v1/pilots/:principal.
//
//	@Summary	Retire a pilot
//	@Tags		crew
//	@Param		X-Principal	header	string	true	"caller identity"
//	@Param		principal	path	string	true	"pilot principal"
//	@Success	204
//	@Router		/pilots/{principal} [delete]
func (s *Server) DeletePilot(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	principal, err := crewPrincipal(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeletePilotCommand(caller, principal)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.DeletePilot.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetDrones handles GET /api/v1/drones.
//
//	@Summary	List the drone roster, active and retired
//	@Tags		crew
//	@Produce	json
//	@Param		X-Principal	header	string	true	"caller identity"
//	@Success	200	{array}		queries.DroneResponse
//	@Failure	403	{object}	Error
//	@Router		/drones [get]
func (s *Server) GetDrones(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetDronesQuery(caller)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.queries.GetDrones.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// AddDrone handles POST /api/v1/drones. Re-registering a retired drone
// reinstates the existing roster slot.
//
//	@Summary	Register or reinstate a drone
//	@Tags		crew
//	@Accept		json
//	@Param		X-Principal	header	string			true	"caller identity"
//	@Param		request		body	NewDroneRequest	true	"drone"
//	@Success	204
//	@Router		/drones [post]
func (s *Server) AddDrone(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	var request NewDroneRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	principal, err := kernel.NewPrincipal(request.Principal)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAddDroneCommand(caller, principal,
		request.DroneID, request.DroneType)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.AddDrone.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDrone handles DELETE /api/v1/drones/:principal.
//
//	@Summary	Retire a drone
//	@Tags		crew
//	@Param		X-Principal	header	string	true	"caller identity"
//	@Param		principal	path	string	true	"drone principal"
//	@Success	204
//	@Router		/drones/{principal} [delete]
func (s *Server) DeleteDrone(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	principal, err := crewPrincipal(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteDroneCommand(caller, principal)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.DeleteDrone.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetPilot handles GET /api/v1/pilots/:principal.
//
//	@Summary	Get one pilot roster slot
//	@Tags		crew
//	@Produce	json
//	@Param		X-Principal	header		string	true	"caller identity"
//	@Param		principal	path		string	true	"pilot principal"
//	@Success	200			{object}	queries.PilotResponse
//	@Failure	403			{object}	Error
//	@Failure	404			{object}	Error
//	@Router		/pilots/{principal} [get]
func (s *Server) GetPilot(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	principal, err := crewPrincipal(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetPilotQuery(caller, principal)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.queries.GetPilot.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// GetDrone handles GET /api/v1/drones/:principal.
//
//	@Summary	Get one drone roster slot
//	@Tags		crew
//	@Produce	json
//	@Param		X-Principal	header		string	true	"caller identity"
//	@Param		principal	path		string	true	"drone principal"
//	@Success	200			{object}	queries.DroneResponse
//	@Failure	403			{object}	Error
//	@Failure	404			{object}	Error
//	@Router		/drones/{principal} [get]
func (s *Server) GetDrone(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	principal, err := crewPrincipal(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetDroneQuery(caller, principal)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.queries.GetDrone.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}
