package ports

import (
	"context"

	"starwings/internal/core/domain/model/crew"
	"starwings/internal/core/domain/model/kernel"
)

// CrewRepository defines the persistence contract for the pilot and drone
// rosters. Lookups by principal return soft-deleted entries too, so callers
// can reinstate a slot instead of creating a duplicate.
type CrewRepository interface {
	// NextPilotIndex reserves the next pilot roster slot.
	NextPilotIndex(ctx context.Context) (int, error)

	// AddPilot persists a new roster entry.
	AddPilot(ctx context.Context, pilot *crew.Pilot) error

	// UpdatePilot persists changes to an existing roster entry, including
	// soft deletion and the flight handle list.
	UpdatePilot(ctx context.Context, pilot *crew.Pilot) error

	// GetPilot retrieves a roster entry by principal, deleted entries
	// included. Returns ObjectNotFound for a principal never registered.
	GetPilot(ctx context.Context, principal kernel.Principal) (*crew.Pilot, error)

	// NextDroneIndex reserves the next drone roster slot.
	NextDroneIndex(ctx context.Context) (int, error)

	// AddDrone persists a new roster entry.
	AddDrone(ctx context.Context, drone *crew.Drone) error

	// UpdateDrone persists changes to an existing roster entry.
	UpdateDrone(ctx context.Context, drone *crew.Drone) error

	// GetDrone retrieves a roster entry by principal, deleted entries
	// included. Returns ObjectNotFound for a principal never registered.
	GetDrone(ctx context.Context, principal kernel.Principal) (*crew.Drone, error)
}
