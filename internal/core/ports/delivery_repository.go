package ports

import (
	"context"

	"starwings/internal/core/domain/model/delivery"
)

// DeliveryRepository defines the persistence contract for delivery records.
type DeliveryRepository interface {
	// NextSequence reserves the next creation sequence number, one input of
	// the deterministic delivery id.
	NextSequence(ctx context.Context) (int, error)

	// Add persists a new delivery. The delivery must not already exist.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its deterministic id.
	// Returns ObjectNotFound for an unknown id.
	Get(ctx context.Context, id string) (*delivery.Delivery, error)
}
