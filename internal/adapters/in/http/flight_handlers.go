package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"starwings/internal/core/application/usecases/commands"
	"starwings/internal/core/application/usecases/queries"
	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"
)

// AllocateFlightRequest is the body of the flight allocation endpoint.
type AllocateFlightRequest struct {
	DeliveryID     string `json:"deliveryId"`
	ConopsID       int    `json:"conopsId"`
	DronePrincipal string `json:"dronePrincipal"`
	Salt           string `json:"salt"`
}

// FlightAllocatedResponse returns the deterministic handle of a new flight.
type FlightAllocatedResponse struct {
	Handle kernel.UUID `json:"handle"`
}

// InitializeFlightRequest fixes the operational plan of an allocated flight.
type InitializeFlightRequest struct {
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Depart          string    `json:"depart"`
	Destination     string    `json:"destination"`
}

// FlightStatusRequest moves one of the flight's two status trackers.
type FlightStatusRequest struct {
	Status int `json:"status"`
}

// FlightCheckRequest marks one checklist item done.
type FlightCheckRequest struct {
	Check      int  `json:"check"`
	Postflight bool `json:"postflight"`
}

// AirRiskValidationRequest sets the clearance flag of one embedded air risk.
type AirRiskValidationRequest struct {
	Validated bool `json:"validated"`
}

// CheckpointRequest is one position report.
type CheckpointRequest struct {
	At        time.Time `json:"at"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// RiskEventRequest is one in-flight incident report.
type RiskEventRequest struct {
	At   time.Time `json:"at"`
	Risk int       `json:"risk"`
}

// GetFlightHandles handles GET /api/v1/flights.
//
//	@Summary	List every flight handle, oldest first
//	@Tags		flights
//	@Produce	json
//	@Param		X-Principal	header	string	true	"caller identity"
//	@Success	200	{array}		string
//	@Failure	403	{object}	Error
//	@Router		/flights [get]
func (s *Server) GetFlightHandles(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetFlightHandlesQuery(caller)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.queries.GetFlightHandles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// GetFlight handles GET /api/v1/flights/:handle.
//
//	@Summary	Get one flight record
//	@Tags		flights
//	@Produce	json
//	@Param		X-Principal	header	string	true	"caller identity"
//	@Param		handle	path		string	true	"flight handle"
//	@Success	200		{object}	queries.FlightResponse
//	@Failure	403		{object}	Error
//	@Router		/flights/{handle} [get]
func (s *Server) GetFlight(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	handle, err := flightHandle(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetFlightQuery(caller, handle)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.queries.GetFlight.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// AllocateFlight handles POST /api/v1/flights. The caller is the pilot of
// the new flight.
//
//	@Summary	Allocate a flight for a delivery
//	@Tags		flights
//	@Accept		json
//	@Produce	json
//	@Param		X-Principal	header		string					true	"caller identity, the pilot"
//	@Param		request		body		AllocateFlightRequest	true	"allocation"
//	@Success	201			{object}	FlightAllocatedResponse
//	@Router		/flights [post]
func (s *Server) AllocateFlight(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	var request AllocateFlightRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	dronePrincipal, err := kernel.NewPrincipal(request.DronePrincipal)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAllocateFlightCommand(caller,
		request.DeliveryID, request.ConopsID, dronePrincipal, request.Salt)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.AllocateFlight.Handle(ctx.Request().Context(), &cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, FlightAllocatedResponse{Handle: cmd.Handle()})
}

// InitializeFlight handles POST /api/v1/flights/:handle/initialization.
//
//	@Summary	Fix the operational plan of an allocated flight
//	@Tags		flights
//	@Accept		json
//	@Param		X-Principal	header	string					true	"caller identity, the pilot"
//	@Param		handle		path	string					true	"flight handle"
//	@Param		request		body	InitializeFlightRequest	true	"operational plan"
//	@Success	204
//	@Router		/flights/{handle}/initialization [post]
func (s *Server) InitializeFlight(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	handle, err := flightHandle(ctx)
	if err != nil {
		return err
	}
	var request InitializeFlightRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewInitializeFlightCommand(caller, handle,
		request.ScheduledAt, request.DurationMinutes,
		request.Depart, request.Destination)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.InitializeFlight.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeFlightStatus handles PUT /api/v1/flights/:handle/status. The tracker
// that moves is the caller's own: the flight's pilot moves the pilot tracker,
// the flight's drone the drone tracker.
//
//	@Summary	Advance the caller's status tracker on a flight
//	@Tags		flights
//	@Accept		json
//	@Param		X-Principal	header	string				true	"caller identity, pilot or drone of the flight"
//	@Param		handle		path	string				true	"flight handle"
//	@Param		request		body	FlightStatusRequest	true	"new status"
//	@Success	204
//	@Router		/flights/{handle}/status [put]
func (s *Server) ChangeFlightStatus(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	handle, err := flightHandle(ctx)
	if err != nil {
		return err
	}
	var request FlightStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeFlightStatusCommand(caller, handle,
		flight.Status(request.Status))
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.ChangeFlightStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelFlight handles POST /api/v1/flights/:handle/cancellation.
//
//	@Summary	Cancel a flight before departure
//	@Tags		flights
//	@Param		X-Principal	header	string	true	"caller identity, the pilot"
//	@Param		handle		path	string	true	"flight handle"
//	@Success	204
//	@Router		/flights/{handle}/cancellation [post]
func (s *Server) CancelFlight(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	handle, err := flightHandle(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelFlightCommand(caller, handle)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.CancelFlight.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteFlightCheck handles PUT /api/v1/flights/:handle/checks.
//
//	@Summary	Mark one checklist item done
//	@Tags		flights
//	@Accept		json
//	@Param		X-Principal	header	string				true	"caller identity, the pilot"
//	@Param		handle		path	string				true	"flight handle"
//	@Param		request		body	FlightCheckRequest	true	"checklist item"
//	@Success	204
//	@Router		/flights/{handle}/checks [put]
func (s *Server) CompleteFlightCheck(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	handle, err := flightHandle(ctx)
	if err != nil {
		return err
	}
	var request FlightCheckRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteFlightCheckCommand(caller, handle,
		flight.Check(request.Check), request.Postflight)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.CompleteFlightCheck.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetAirRiskValidation handles PUT /api/v1/flights/:handle/air-risks/:riskId.
//
//	@Summary	Clear or withdraw clearance of one embedded air risk
//	@Tags		flights
//	@Accept		json
//	@Param		X-Principal	header	string						true	"caller identity, the pilot"
//	@Param		handle		path	string						true	"flight handle"
//	@Param		riskId		path	int							true	"air risk position"
//	@Param		request		body	AirRiskValidationRequest	true	"clearance flag"
//	@Success	204
//	@Router		/flights/{handle}/air-risks/{riskId} [put]
func (s *Server) SetAirRiskValidation(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	handle, err := flightHandle(ctx)
	if err != nil {
		return err
	}
	riskID, err := strconv.Atoi(ctx.Param("riskId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "risk id must be an integer")
	}
	var request AirRiskValidationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetAirRiskValidationCommand(caller, handle,
		riskID, request.Validated)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.SetAirRiskValidation.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PickUpParcel handles POST /api/v1/flights/:handle/pickup.
//
//	@Summary	Record that the drone took custody of the parcel
//	@Tags		flights
//	@Param		X-Principal	header	string	true	"caller identity, the drone"
//	@Param		handle		path	string	true	"flight handle"
//	@Success	204
//	@Router		/flights/{handle}/pickup [post]
func (s *Server) PickUpParcel(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	handle, err := flightHandle(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewPickUpParcelCommand(caller, handle)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.PickUpParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeliverParcel handles POST /api/v1/flights/:handle/delivery.
//
//	@Summary	Record that the parcel reached the recipient
//	@Tags		flights
//	@Param		X-Principal	header	string	true	"caller identity, the drone"
//	@Param		handle		path	string	true	"flight handle"
//	@Success	204
//	@Router		/flights/{handle}/delivery [post]
func (s *Server) DeliverParcel(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	handle, err := flightHandle(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeliverParcelCommand(caller, handle)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.DeliverParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddCheckpoint handles POST /api/v1/flights/:handle/checkpoints.
//
//	@Summary	Append a position report to the flight track
//	@Tags		flights
//	@Accept		json
//	@Param		X-Principal	header	string				true	"caller identity, the drone"
//	@Param		handle		path	string				true	"flight handle"
//	@Param		request		body	CheckpointRequest	true	"position"
//	@Success	204
//	@Router		/flights/{handle}/checkpoints [post]
func (s *Server) AddCheckpoint(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	handle, err := flightHandle(ctx)
	if err != nil {
		return err
	}
	var request CheckpointRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddCheckpointCommand(caller, handle,
		request.At, request.Latitude, request.Longitude)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.AddCheckpoint.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddRiskEvent handles POST /api/v1/flights/:handle/risk-events.
//
//	@Summary	Append an incident to the flight's risk log
//	@Tags		flights
//	@Accept		json
//	@Param		X-Principal	header	string				true	"caller identity, the drone"
//	@Param		handle		path	string				true	"flight handle"
//	@Param		request		body	RiskEventRequest	true	"incident"
//	@Success	204
//	@Router		/flights/{handle}/risk-events [post]
func (s *Server) AddRiskEvent(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	handle, err := flightHandle(ctx)
	if err != nil {
		return err
	}
	var request RiskEventRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddRiskEventCommand(caller, handle,
		request.At, flight.Risk(request.Risk))
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.AddRiskEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
