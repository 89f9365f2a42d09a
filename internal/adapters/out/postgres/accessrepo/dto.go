// Package accessrepo persists the role registry. The registry is a singleton
// aggregate stored as two row sets: one (role, principal) pair per grant and
// one (role, admin role) pair per delegation.
package accessrepo

import (
	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/kernel"
)

// RoleGrantDTO is one (role, principal) pair of the registry.
type RoleGrantDTO struct {
	Role      string `gorm:"type:varchar(64);primaryKey"`
	Principal string `gorm:"type:varchar(255);primaryKey"`
}

// TableName overrides GORM's default naming to use "role_grants".
func (RoleGrantDTO) TableName() string {
	return "role_grants"
}

// RoleAdminDTO records which role administers a role, when it differs from
// the default admin role.
type RoleAdminDTO struct {
	Role      string `gorm:"type:varchar(64);primaryKey"`
	AdminRole string `gorm:"type:varchar(64);not null"`
}

// TableName overrides GORM's default naming to use "role_admins".
func (RoleAdminDTO) TableName() string {
	return "role_admins"
}

// fromDomain flattens the registry into its grant and delegation rows.
func fromDomain(registry *access.Registry) ([]RoleGrantDTO, []RoleAdminDTO) {
	domainGrants := registry.Grants()
	grants := make([]RoleGrantDTO, 0, len(domainGrants))
	for _, grant := range domainGrants {
		grants = append(grants, RoleGrantDTO{
			Role:      grant.Role.String(),
			Principal: grant.Principal.String(),
		})
	}

	domainAdmins := registry.RoleAdmins()
	admins := make([]RoleAdminDTO, 0, len(domainAdmins))
	for role, adminRole := range domainAdmins {
		admins = append(admins, RoleAdminDTO{
			Role:      role.String(),
			AdminRole: adminRole.String(),
		})
	}

	return grants, admins
}

// toDomain reconstructs the registry aggregate from its rows.
func toDomain(grantDTOs []RoleGrantDTO, adminDTOs []RoleAdminDTO) (*access.Registry, error) {
	grants := make([]access.Grant, 0, len(grantDTOs))
	for _, dto := range grantDTOs {
		principal, err := kernel.NewPrincipal(dto.Principal)
		if err != nil {
			return nil, err
		}
		grants = append(grants, access.Grant{
			Role:      access.Role(dto.Role),
			Principal: principal,
		})
	}

	admins := make(map[access.Role]access.Role, len(adminDTOs))
	for _, dto := range adminDTOs {
		admins[access.Role(dto.Role)] = access.Role(dto.AdminRole)
	}

	return access.RestoreRegistry(grants, admins)
}
