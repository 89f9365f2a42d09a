// Package ports defines the persistence and messaging contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"starwings/internal/core/domain/model/access"
)

// AccessRepository defines the persistence contract for the role registry.
// The registry is a singleton aggregate: one row set per deployment.
type AccessRepository interface {
	// Get retrieves the full registry: every grant and every admin-role
	// delegation. Returns ObjectNotFound when the registry was never
	// bootstrapped.
	Get(ctx context.Context) (*access.Registry, error)

	// Save persists the registry state, inserting it on first call.
	Save(ctx context.Context, registry *access.Registry) error
}
