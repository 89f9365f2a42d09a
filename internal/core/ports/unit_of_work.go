package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes; domain events
// recorded by tracked aggregates are published only after a successful commit.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and publishes the domain events
	// drained from every aggregate persisted through this unit of work.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and discards any pending
	// domain events. Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// AccessRepository returns an AccessRepository bound to the current transaction.
	AccessRepository() AccessRepository

	// ConopsRepository returns a ConopsRepository bound to the current transaction.
	ConopsRepository() ConopsRepository

	// DeliveryRepository returns a DeliveryRepository bound to the current transaction.
	DeliveryRepository() DeliveryRepository

	// CrewRepository returns a CrewRepository bound to the current transaction.
	CrewRepository() CrewRepository

	// FlightRepository returns a FlightRepository bound to the current transaction.
	FlightRepository() FlightRepository
}
