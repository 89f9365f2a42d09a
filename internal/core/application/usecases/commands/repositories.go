// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization against
// the role registry, transaction management, and persistence.
package commands

import (
	"context"

	"starwings/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Every unit of work carries the AccessRepository so a handler can authorize
// the caller inside the same transaction it mutates in.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccessRepoFactory provides access to the role registry within a transaction.
	AccessRepoFactory interface {
		AccessRepository() ports.AccessRepository
	}

	// ConopsRepoFactory provides access to the conops repository within a transaction.
	ConopsRepoFactory interface {
		ConopsRepository() ports.ConopsRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CrewRepoFactory provides access to the crew repository within a transaction.
	CrewRepoFactory interface {
		CrewRepository() ports.CrewRepository
	}

	// FlightRepoFactory provides access to the flight repository within a transaction.
	FlightRepoFactory interface {
		FlightRepository() ports.FlightRepository
	}

	// AccessUoW manages transactions for role registry operations.
	AccessUoW interface {
		TxManager
		AccessRepoFactory
	}

	// AccessUoWFactory creates new access unit of work instances.
	AccessUoWFactory interface {
		Create() AccessUoW
	}

	// ConopsUoW manages transactions for route dossier operations.
	ConopsUoW interface {
		TxManager
		AccessRepoFactory
		ConopsRepoFactory
	}

	// ConopsUoWFactory creates new conops unit of work instances.
	ConopsUoWFactory interface {
		Create() ConopsUoW
	}

	// DeliveryUoW manages transactions for delivery record operations.
	DeliveryUoW interface {
		TxManager
		AccessRepoFactory
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CrewUoW manages transactions for roster operations.
	CrewUoW interface {
		TxManager
		AccessRepoFactory
		CrewRepoFactory
	}

	// CrewUoWFactory creates new crew unit of work instances.
	CrewUoWFactory interface {
		Create() CrewUoW
	}

	// FlightUoW manages transactions for operations on one flight record.
	FlightUoW interface {
		TxManager
		AccessRepoFactory
		FlightRepoFactory
	}

	// FlightUoWFactory creates new flight unit of work instances.
	FlightUoWFactory interface {
		Create() FlightUoW
	}

	// UoW manages transactions spanning every aggregate. Used by the flight
	// allocation workflow, which touches deliveries, dossiers, the roster and
	// the flight store in one transaction.
	UoW interface {
		TxManager
		AccessRepoFactory
		ConopsRepoFactory
		DeliveryRepoFactory
		CrewRepoFactory
		FlightRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
