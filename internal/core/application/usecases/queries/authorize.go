package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
)

// adminRoles are the roles that open admin-gated read models. The default
// admin role is the bootstrap super role and carries every admin privilege.
func adminRoles() []access.Role {
	return []access.Role{access.DefaultAdminRole, access.AdminRole}
}

// requireAnyRole refuses the caller unless it holds at least one of the given
// roles. Reads the grants table directly so query handlers stay on the read
// model, mirroring the registry check on the command side.
func requireAnyRole(ctx context.Context, db *gorm.DB, caller kernel.Principal, roles []access.Role) error {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}

	var count int
	err := db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM role_grants WHERE principal = ? AND role IN ?`,
			caller.String(), names).
		Scan(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewAccessRefusedError(caller.String(), strings.Join(names, " or "))
	}
	return nil
}
