package ports

import (
	"context"

	"starwings/internal/core/domain/model/conops"
)

// ConopsRepository defines the persistence contract for route dossiers.
type ConopsRepository interface {
	// NextID reserves the next sequential dossier id.
	NextID(ctx context.Context) (int, error)

	// Add persists a new dossier. The dossier must not already exist.
	Add(ctx context.Context, aggregate *conops.Conops) error

	// Update persists changes to an existing dossier.
	Update(ctx context.Context, aggregate *conops.Conops) error

	// Get retrieves a dossier with its air-risk list by id.
	// Returns ObjectNotFound for an unknown id.
	Get(ctx context.Context, id int) (*conops.Conops, error)
}
