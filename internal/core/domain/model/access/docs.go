// Package access provides the identity registry: role-based authorization for
// every other component of the Starwings service.
//
// The package includes:
//   - Role: named capability tags (admin, pilot, drone, plus the
//     self-administering default admin super role)
//   - Registry: the aggregate tracking role grants and the role-admin
//     hierarchy, with idempotent grant/revoke, self-only renounce, and
//     admin delegation via SetRoleAdmin
//
// Authorization semantics follow the original access control layer: grants and
// revocations are idempotent no-ops when nothing changes (and emit no event),
// and changing a role's admin role only affects future grant/revoke
// authorization, never existing holders.
package access
