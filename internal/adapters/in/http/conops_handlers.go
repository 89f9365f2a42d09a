package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"starwings/internal/core/application/usecases/commands"
	"starwings/internal/core/application/usecases/queries"
	"starwings/internal/core/domain/model/conops"
)

// AirRiskRequest is one named hazard submitted with a new CONOPS.
type AirRiskRequest struct {
	Name     string `json:"name"`
	RiskType int    `json:"riskType"`
}

// NewConopsRequest is the body of the CONOPS registration endpoint.
type NewConopsRequest struct {
	Name          string           `json:"name"`
	StartingPoint string           `json:"startingPoint"`
	EndPoint      string           `json:"endPoint"`
	CrossRoad     string           `json:"crossRoad"`
	ExclusionZone string           `json:"exclusionZone"`
	AirRisks      []AirRiskRequest `json:"airRisks"`
	GRC           int              `json:"grc"`
	ARC           int              `json:"arc"`
}

// ConopsCreatedResponse returns the id assigned to a new CONOPS.
type ConopsCreatedResponse struct {
	ID int `json:"id"`
}

// ActivationRequest toggles a CONOPS on or off.
type ActivationRequest struct {
	Activated bool `json:"activated"`
}

func conopsID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "conops id must be an integer")
	}
	return id, nil
}

// GetAllConops handles GET /api/v1/conops.
//
//	@Summary	List every CONOPS dossier
//	@Tags		conops
//	@Produce	json
//	@Param		X-Principal	header	string	true	"caller identity"
//	@Success	200	{array}		queries.ConopsResponse
//	@Failure	403	{object}	Error
//	@Router		/conops [get]
func (s *Server) GetAllConops(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetAllConopsQuery(caller)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.queries.GetAllConops.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// GetConops handles GET /api/v1/conops/:id.
//
//	@Summary	Get one CONOPS dossier
//	@Tags		conops
//	@Produce	json
//	@Param		X-Principal	header	string	true	"caller identity"
//	@Param		id	path		int	true	"conops id"
//	@Success	200	{object}	queries.ConopsResponse
//	@Failure	403	{object}	Error
//	@Router		/conops/{id} [get]
func (s *Server) GetConops(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	id, err := conopsID(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetConopsQuery(caller, id)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.queries.GetConops.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// AddConops handles POST /api/v1/conops.
//
//	@Summary	Register a CONOPS dossier
//	@Tags		conops
//	@Accept		json
//	@Produce	json
//	@Param		X-Principal	header		string				true	"caller identity"
//	@Param		request		body		NewConopsRequest	true	"dossier"
//	@Success	201			{object}	ConopsCreatedResponse
//	@Router		/conops [post]
func (s *Server) AddConops(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	var request NewConopsRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	airRisks := make([]conops.AirRiskInput, 0, len(request.AirRisks))
	for _, risk := range request.AirRisks {
		airRisks = append(airRisks, conops.AirRiskInput{
			Name:     risk.Name,
			RiskType: conops.RiskType(risk.RiskType),
		})
	}

	cmd, err := commands.NewAddConopsCommand(caller,
		request.Name, request.StartingPoint, request.EndPoint,
		request.CrossRoad, request.ExclusionZone,
		airRisks, request.GRC, request.ARC)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.AddConops.Handle(ctx.Request().Context(), &cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, ConopsCreatedResponse{ID: cmd.ConopsID()})
}

// SetConopsActivation handles PUT /api/v1/conops/:id/activation.
//
//	@Summary	Enable or disable a CONOPS dossier
//	@Tags		conops
//	@Accept		json
//	@Param		X-Principal	header	string				true	"caller identity"
//	@Param		id			path	int					true	"conops id"
//	@Param		request		body	ActivationRequest	true	"activation flag"
//	@Success	204
//	@Router		/conops/{id}/activation [put]
func (s *Server) SetConopsActivation(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	id, err := conopsID(ctx)
	if err != nil {
		return err
	}
	var request ActivationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetConopsActivationCommand(caller, id, request.Activated)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.SetConopsActivation.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
