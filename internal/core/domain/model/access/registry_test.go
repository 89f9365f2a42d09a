package access_test

import (
	"testing"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func principal(t *testing.T, token string) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(token)
	require.NoError(t, err)
	return p
}

func TestNewRegistry(t *testing.T) {
	t.Run("bootstrap_principal_gets_default_admin", func(t *testing.T) {
		admin := principal(t, "deployer")

		registry, err := access.NewRegistry(admin)

		require.NoError(t, err)
		require.NoError(t, registry.Validate())
		assert.True(t, registry.HasRole(access.DefaultAdminRole, admin))

		events := registry.DrainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "RoleGranted", events[0].EventName())
	})

	t.Run("other_roles_admin_is_the_default_admin_role", func(t *testing.T) {
		registry, err := access.NewRegistry(principal(t, "deployer"))
		require.NoError(t, err)

		assert.Equal(t, access.DefaultAdminRole, registry.GetRoleAdmin(access.AdminRole))
		assert.Equal(t, access.DefaultAdminRole, registry.GetRoleAdmin(access.PilotRole))
	})

	t.Run("default_admin_roles_admin_is_itself", func(t *testing.T) {
		registry, err := access.NewRegistry(principal(t, "deployer"))
		require.NoError(t, err)

		assert.Equal(t, access.DefaultAdminRole, registry.GetRoleAdmin(access.DefaultAdminRole))
	})

	t.Run("zero_principal_is_rejected", func(t *testing.T) {
		_, err := access.NewRegistry(kernel.Principal{})
		require.Error(t, err)
	})
}

func TestRegistry_GrantRole(t *testing.T) {
	admin := principal(t, "deployer")
	pilot := principal(t, "pilot-1")
	other := principal(t, "other")

	t.Run("admin_can_grant", func(t *testing.T) {
		registry, _ := access.NewRegistry(admin)
		registry.DrainEvents()

		require.NoError(t, registry.GrantRole(admin, access.PilotRole, pilot))

		assert.True(t, registry.HasRole(access.PilotRole, pilot))
		events := registry.DrainEvents()
		require.Len(t, events, 1)
		granted, ok := events[0].(access.RoleGranted)
		require.True(t, ok)
		assert.Equal(t, access.PilotRole, granted.Role)
		assert.True(t, granted.Principal.IsEqual(pilot))
	})

	t.Run("grant_is_idempotent_and_silent_on_repeat", func(t *testing.T) {
		registry, _ := access.NewRegistry(admin)
		require.NoError(t, registry.GrantRole(admin, access.PilotRole, pilot))
		registry.DrainEvents()

		require.NoError(t, registry.GrantRole(admin, access.PilotRole, pilot))

		assert.Empty(t, registry.Events())
	})

	t.Run("non_admin_cannot_grant", func(t *testing.T) {
		registry, _ := access.NewRegistry(admin)

		err := registry.GrantRole(other, access.PilotRole, pilot)

		require.ErrorIs(t, err, errs.ErrAccessRefused)
		assert.False(t, registry.HasRole(access.PilotRole, pilot))
	})

	t.Run("role_is_false_until_granted", func(t *testing.T) {
		registry, _ := access.NewRegistry(admin)
		assert.False(t, registry.HasRole(access.AdminRole, pilot))
	})
}

func TestRegistry_RevokeRole(t *testing.T) {
	admin := principal(t, "deployer")
	pilot := principal(t, "pilot-1")
	other := principal(t, "other")

	t.Run("admin_can_revoke", func(t *testing.T) {
		registry, _ := access.NewRegistry(admin)
		require.NoError(t, registry.GrantRole(admin, access.PilotRole, pilot))
		registry.DrainEvents()

		require.NoError(t, registry.RevokeRole(admin, access.PilotRole, pilot))

		assert.False(t, registry.HasRole(access.PilotRole, pilot))
		events := registry.DrainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "RoleRevoked", events[0].EventName())
	})

	t.Run("revoking_unheld_role_is_silent_no_op", func(t *testing.T) {
		registry, _ := access.NewRegistry(admin)
		registry.DrainEvents()

		require.NoError(t, registry.RevokeRole(admin, access.PilotRole, pilot))

		assert.Empty(t, registry.Events())
	})

	t.Run("non_admin_cannot_revoke", func(t *testing.T) {
		registry, _ := access.NewRegistry(admin)
		require.NoError(t, registry.GrantRole(admin, access.PilotRole, pilot))

		err := registry.RevokeRole(other, access.PilotRole, pilot)

		require.ErrorIs(t, err, errs.ErrAccessRefused)
		assert.True(t, registry.HasRole(access.PilotRole, pilot))
	})
}

func TestRegistry_RenounceRole(t *testing.T) {
	admin := principal(t, "deployer")
	pilot := principal(t, "pilot-1")

	t.Run("holder_can_renounce_own_role", func(t *testing.T) {
		registry, _ := access.NewRegistry(admin)
		require.NoError(t, registry.GrantRole(admin, access.PilotRole, pilot))

		require.NoError(t, registry.RenounceRole(pilot, access.PilotRole, pilot))

		assert.False(t, registry.HasRole(access.PilotRole, pilot))
	})

	t.Run("cannot_renounce_for_someone_else", func(t *testing.T) {
		registry, _ := access.NewRegistry(admin)
		require.NoError(t, registry.GrantRole(admin, access.PilotRole, pilot))

		err := registry.RenounceRole(admin, access.PilotRole, pilot)

		require.ErrorIs(t, err, errs.ErrAccessRefused)
		assert.True(t, registry.HasRole(access.PilotRole, pilot))
	})

	t.Run("renouncing_unheld_role_is_silent_no_op", func(t *testing.T) {
		registry, _ := access.NewRegistry(admin)
		registry.DrainEvents()

		require.NoError(t, registry.RenounceRole(pilot, access.PilotRole, pilot))

		assert.Empty(t, registry.Events())
	})
}

func TestRegistry_SetRoleAdmin(t *testing.T) {
	admin := principal(t, "deployer")
	operator := principal(t, "operator")
	pilot := principal(t, "pilot-1")

	t.Run("delegation_changes_future_authorization_only", func(t *testing.T) {
		registry, _ := access.NewRegistry(admin)
		require.NoError(t, registry.GrantRole(admin, access.AdminRole, operator))
		require.NoError(t, registry.GrantRole(admin, access.PilotRole, pilot))

		require.NoError(t, registry.SetRoleAdmin(admin, access.PilotRole, access.AdminRole))

		// Existing holder keeps the grant.
		assert.True(t, registry.HasRole(access.PilotRole, pilot))
		assert.Equal(t, access.AdminRole, registry.GetRoleAdmin(access.PilotRole))

		// The delegated admin can now grant; the default admin no longer can
		// unless it also holds AdminRole.
		require.NoError(t, registry.GrantRole(operator, access.PilotRole, principal(t, "pilot-2")))
		err := registry.GrantRole(admin, access.PilotRole, principal(t, "pilot-3"))
		require.ErrorIs(t, err, errs.ErrAccessRefused)
	})

	t.Run("requires_current_admin_role", func(t *testing.T) {
		registry, _ := access.NewRegistry(admin)

		err := registry.SetRoleAdmin(operator, access.PilotRole, access.AdminRole)

		require.ErrorIs(t, err, errs.ErrAccessRefused)
	})

	t.Run("records_admin_change_event", func(t *testing.T) {
		registry, _ := access.NewRegistry(admin)
		registry.DrainEvents()

		require.NoError(t, registry.SetRoleAdmin(admin, access.PilotRole, access.AdminRole))

		events := registry.DrainEvents()
		require.Len(t, events, 1)
		changed, ok := events[0].(access.RoleAdminChanged)
		require.True(t, ok)
		assert.Equal(t, access.DefaultAdminRole, changed.PreviousAdminRole)
		assert.Equal(t, access.AdminRole, changed.NewAdminRole)
	})
}

func TestRegistry_RestoreRegistry(t *testing.T) {
	admin := principal(t, "deployer")
	pilot := principal(t, "pilot-1")

	t.Run("round_trips_grants_and_admins", func(t *testing.T) {
		original, _ := access.NewRegistry(admin)
		require.NoError(t, original.GrantRole(admin, access.PilotRole, pilot))
		require.NoError(t, original.SetRoleAdmin(admin, access.DroneRole, access.AdminRole))

		restored, err := access.RestoreRegistry(original.Grants(), original.RoleAdmins())

		require.NoError(t, err)
		assert.True(t, restored.HasRole(access.DefaultAdminRole, admin))
		assert.True(t, restored.HasRole(access.PilotRole, pilot))
		assert.Equal(t, access.AdminRole, restored.GetRoleAdmin(access.DroneRole))
		assert.Empty(t, restored.Events())
	})
}

func TestRegistry_RequireAnyRole(t *testing.T) {
	admin := principal(t, "deployer")
	pilot := principal(t, "pilot-1")

	registry, _ := access.NewRegistry(admin)
	require.NoError(t, registry.GrantRole(admin, access.PilotRole, pilot))

	require.NoError(t, registry.RequireAnyRole(pilot, access.PilotRole, access.DroneRole))
	require.ErrorIs(t,
		registry.RequireAnyRole(pilot, access.AdminRole, access.DroneRole),
		errs.ErrAccessRefused)
}
