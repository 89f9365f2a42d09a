package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"starwings/internal/core/application/usecases/commands"
	"starwings/internal/core/application/usecases/queries"
	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/kernel"
)

// RoleRequest is the body of the grant, revoke and renounce endpoints.
type RoleRequest struct {
	Role      string `json:"role"`
	Principal string `json:"principal"`
}

// RoleAdminRequest is the body of the role-admin delegation endpoint.
type RoleAdminRequest struct {
	Role      string `json:"role"`
	AdminRole string `json:"adminRole"`
}

func (s *Server) bindRoleRequest(ctx echo.Context) (access.Role, kernel.Principal, error) {
	var request RoleRequest
	if err := ctx.Bind(&request); err != nil {
		return "", kernel.Principal{}, badRequest(ctx, "Invalid request body")
	}
	principal, err := kernel.NewPrincipal(request.Principal)
	if err != nil {
		return "", kernel.Principal{}, fail(ctx, err)
	}
	return access.Role(request.Role), principal, nil
}

// GrantRole handles POST /api/v1/roles/grant.
//
//	@Summary	Grant a role to a principal
//	@Tags		identity
//	@Accept		json
//	@Param		X-Principal	header	string		true	"caller identity"
//	@Param		request		body	RoleRequest	true	"role and principal"
//	@Success	204
//	@Router		/roles/grant [post]
func (s *Server) GrantRole(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	role, principal, err := s.bindRoleRequest(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewGrantRoleCommand(caller, role, principal)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.GrantRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RevokeRole handles POST /api/v1/roles/revoke.
//
//	@Summary	Revoke a role from a principal
//	@Tags		identity
//	@Accept		json
//	@Param		X-Principal	header	string		true	"caller identity"
//	@Param		request		body	RoleRequest	true	"role and principal"
//	@Success	204
//	@Router		/roles/revoke [post]
func (s *Server) RevokeRole(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	role, principal, err := s.bindRoleRequest(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRevokeRoleCommand(caller, role, principal)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.RevokeRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RenounceRole handles POST /api/v1/roles/renounce. The principal in the
// body must be the caller; renouncing on behalf of someone else is refused.
//
//	@Summary	Renounce one of the caller's own roles
//	@Tags		identity
//	@Accept		json
//	@Param		X-Principal	header	string		true	"caller identity"
//	@Param		request		body	RoleRequest	true	"role and principal"
//	@Success	204
//	@Router		/roles/renounce [post]
func (s *Server) RenounceRole(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	role, principal, err := s.bindRoleRequest(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRenounceRoleCommand(caller, role, principal)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.RenounceRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetRoleAdmin handles POST /api/v1/roles/admin.
//
//	@Summary	Delegate administration of a role to another role
//	@Tags		identity
//	@Accept		json
//	@Param		X-Principal	header	string				true	"caller identity"
//	@Param		request		body	RoleAdminRequest	true	"role and its new admin role"
//	@Success	204
//	@Router		/roles/admin [post]
func (s *Server) SetRoleAdmin(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	var request RoleAdminRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetRoleAdminCommand(caller,
		access.Role(request.Role), access.Role(request.AdminRole))
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.commands.SetRoleAdmin.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetRoles handles GET /api/v1/roles.
//
//	@Summary	View every grant and admin-role delegation
//	@Tags		identity
//	@Produce	json
//	@Param		X-Principal	header	string	true	"caller identity"
//	@Success	200	{object}	queries.RolesResponse
//	@Failure	403	{object}	Error
//	@Router		/roles [get]
func (s *Server) GetRoles(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetRolesQuery(caller)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.queries.GetRoles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}
