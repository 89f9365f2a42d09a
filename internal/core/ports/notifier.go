package ports

import (
	"context"

	"starwings/internal/core/domain/model/kernel"
)

// Notifier publishes domain events to the outside world after a unit of work
// commits. Publishing failures must not undo the committed transaction;
// implementations log and move on.
type Notifier interface {
	// Publish delivers one domain event. Called once per event, in the order
	// the aggregates recorded them.
	Publish(ctx context.Context, event kernel.DomainEvent) error

	// Close releases the underlying connection.
	Close() error
}
