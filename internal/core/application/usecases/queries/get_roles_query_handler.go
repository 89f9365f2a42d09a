package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRolesQueryHandler retrieves the role registry from the database.
type GetRolesQueryHandler struct {
	db *gorm.DB
}

// NewGetRolesQueryHandler creates a handler for role registry queries.
func NewGetRolesQueryHandler(db *gorm.DB) GetRolesQueryHandler {
	return GetRolesQueryHandler{db: db}
}

// Handle executes the query to retrieve every grant and every admin-role
// delegation.
func (h GetRolesQueryHandler) Handle(
	ctx context.Context,
	query GetRolesQuery,
) (RolesResponse, error) {
	if err := query.Validate(); err != nil {
		return RolesResponse{}, err
	}
	if err := requireAnyRole(ctx, h.db, query.Caller(), adminRoles()); err != nil {
		return RolesResponse{}, err
	}

	response := RolesResponse{
		Grants: make([]RoleGrantResponse, 0),
		Admins: make([]RoleAdminResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			role,
			principal
		FROM role_grants
		ORDER BY role, principal
	`).Rows()
	if err != nil {
		return RolesResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var grant RoleGrantResponse
		if err = rows.Scan(&grant.Role, &grant.Principal); err != nil {
			return RolesResponse{}, err
		}
		response.Grants = append(response.Grants, grant)
	}
	if err = rows.Err(); err != nil {
		return RolesResponse{}, err
	}

	adminRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			role,
			admin_role
		FROM role_admins
		ORDER BY role
	`).Rows()
	if err != nil {
		return RolesResponse{}, err
	}
	defer adminRows.Close()

	for adminRows.Next() {
		var admin RoleAdminResponse
		if err = adminRows.Scan(&admin.Role, &admin.AdminRole); err != nil {
			return RolesResponse{}, err
		}
		response.Admins = append(response.Admins, admin)
	}
	if err = adminRows.Err(); err != nil {
		return RolesResponse{}, err
	}

	return response, nil
}
