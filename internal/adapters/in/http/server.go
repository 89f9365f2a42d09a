// Package http exposes the command and query use cases as a REST API.
//
// Every mutating endpoint authenticates the caller through the X-Principal
// header; the identity registry decides what the principal may do, the
// handlers here only translate between HTTP and the application layer.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"starwings/internal/core/application/usecases/commands"
	"starwings/internal/core/application/usecases/queries"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
)

// CommandHandlers bundles the write-side use cases the server dispatches to.
type CommandHandlers struct {
	GrantRole            commands.GrantRoleCommandHandler
	RevokeRole           commands.RevokeRoleCommandHandler
	RenounceRole         commands.RenounceRoleCommandHandler
	SetRoleAdmin         commands.SetRoleAdminCommandHandler
	AddConops            commands.AddConopsCommandHandler
	SetConopsActivation  commands.SetConopsActivationCommandHandler
	CreateDelivery       commands.CreateDeliveryCommandHandler
	SetDeliveryStatus    commands.SetDeliveryStatusCommandHandler
	AddPilot             commands.AddPilotCommandHandler
	DeletePilot          commands.DeletePilotCommandHandler
	AddDrone             commands.AddDroneCommandHandler
	DeleteDrone          commands.DeleteDroneCommandHandler
	AllocateFlight       commands.AllocateFlightCommandHandler
	InitializeFlight     commands.InitializeFlightCommandHandler
	ChangeFlightStatus   commands.ChangeFlightStatusCommandHandler
	CancelFlight         commands.CancelFlightCommandHandler
	CompleteFlightCheck  commands.CompleteFlightCheckCommandHandler
	SetAirRiskValidation commands.SetAirRiskValidationCommandHandler
	PickUpParcel         commands.PickUpParcelCommandHandler
	DeliverParcel        commands.DeliverParcelCommandHandler
	AddCheckpoint        commands.AddCheckpointCommandHandler
	AddRiskEvent         commands.AddRiskEventCommandHandler
}

// QueryHandlers bundles the read-side use cases the server dispatches to.
type QueryHandlers struct {
	GetRoles         queries.GetRolesQueryHandler
	GetAllConops     queries.GetAllConopsQueryHandler
	GetConops        queries.GetConopsQueryHandler
	GetAllDeliveries queries.GetAllDeliveriesQueryHandler
	GetDelivery      queries.GetDeliveryQueryHandler
	GetPilots        queries.GetPilotsQueryHandler
	GetPilot         queries.GetPilotQueryHandler
	GetDrones        queries.GetDronesQueryHandler
	GetDrone         queries.GetDroneQueryHandler
	GetFlightHandles queries.GetFlightHandlesQueryHandler
	GetFlight        queries.GetFlightQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{commands: commandHandlers, queries: queryHandlers}
}

// RegisterRoutes mounts every endpoint of the API on e under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")

	v1.GET("/roles", s.GetRoles)
	v1.POST("/roles/grant", s.GrantRole)
	v1.POST("/roles/revoke", s.RevokeRole)
	v1.POST("/roles/renounce", s.RenounceRole)
	v1.POST("/roles/admin", s.SetRoleAdmin)

	v1.GET("/conops", s.GetAllConops)
	v1.POST("/conops", s.AddConops)
	v1.GET("/conops/:id", s.GetConops)
	v1.PUT("/conops/:id/activation", s.SetConopsActivation)

	v1.GET("/deliveries", s.GetAllDeliveries)
	v1.POST("/deliveries", s.CreateDelivery)
	v1.GET("/deliveries/:id", s.GetDelivery)
	v1.PUT("/deliveries/:id/status", s.SetDeliveryStatus)

	v1.GET("/pilots", s.GetPilots)
	v1.POST("/pilots", s.AddPilot)
	v1.GET("/pilots/:principal", s.GetPilot)
	v1.DELETE("/pilots/:principal", s.DeletePilot)

	v1.GET("/drones", s.GetDrones)
	v1.POST("/drones", s.AddDrone)
	v1.GET("/drones/:principal", s.GetDrone)
	v1.DELETE("/drones/:principal", s.DeleteDrone)

	v1.GET("/flights", s.GetFlightHandles)
	v1.POST("/flights", s.AllocateFlight)
	v1.GET("/flights/:handle", s.GetFlight)
	v1.POST("/flights/:handle/initialization", s.InitializeFlight)
	v1.PUT("/flights/:handle/status", s.ChangeFlightStatus)
	v1.POST("/flights/:handle/cancellation", s.CancelFlight)
	v1.PUT("/flights/:handle/checks", s.CompleteFlightCheck)
	v1.PUT("/flights/:handle/air-risks/:riskId", s.SetAirRiskValidation)
	v1.POST("/flights/:handle/pickup", s.PickUpParcel)
	v1.POST("/flights/:handle/delivery", s.DeliverParcel)
	v1.POST("/flights/:handle/checkpoints", s.AddCheckpoint)
	v1.POST("/flights/:handle/risk-events", s.AddRiskEvent)
}

// Error is the uniform error body of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// principalHeader carries the caller identity. There is no session layer:
// the gateway in front of this service authenticates principals and injects
// the header.
const principalHeader = "X-Principal"

func (s *Server) caller(ctx echo.Context) (kernel.Principal, error) {
	principal, err := kernel.NewPrincipal(ctx.Request().Header.Get(principalHeader))
	if err != nil {
		return kernel.Principal{}, echo.NewHTTPError(http.StatusUnauthorized,
			"missing or invalid "+principalHeader+" header")
	}
	return principal, nil
}

func flightHandle(ctx echo.Context) (kernel.UUID, error) {
	handle, err := kernel.UUIDFromString(ctx.Param("handle"))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest,
			"flight handle must be a UUID")
	}
	return handle, nil
}

// fail maps an application error to the HTTP status it deserves.
func fail(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrAccessRefused):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyExists),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrPreconditionFailed):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
