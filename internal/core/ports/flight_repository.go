package ports

import (
	"context"

	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"
)

// FlightRepository defines the persistence contract for flight records and
// the global handle index.
type FlightRepository interface {
	// Add persists a newly allocated flight under its handle.
	// A handle collision must surface as AlreadyExists.
	Add(ctx context.Context, aggregate *flight.Flight) error

	// Update persists changes to an existing flight.
	Update(ctx context.Context, aggregate *flight.Flight) error

	// Get retrieves a flight by handle, with its air risks, checklists,
	// track and incident log. Returns ObjectNotFound for an unknown handle.
	Get(ctx context.Context, handle kernel.UUID) (*flight.Flight, error)

	// Exists reports whether a handle is already taken, without loading the
	// record.
	Exists(ctx context.Context, handle kernel.UUID) (bool, error)

	// GetAllHandles returns every allocated handle in creation order.
	GetAllHandles(ctx context.Context) ([]kernel.UUID, error)
}
