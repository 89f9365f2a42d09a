// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The unit of work maintains the list of aggregates touched by one
// business transaction, coordinates writing out their changes and publishes
// their recorded domain events after a successful commit.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, notifier)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ConopsRepository().Add(ctx, dossier); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency: each UnitOfWork instance owns one transaction; concurrent
// goroutines must use separate instances created from the shared factory.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"starwings/internal/adapters/out/postgres/accessrepo"
	"starwings/internal/adapters/out/postgres/conopsrepo"
	"starwings/internal/adapters/out/postgres/crewrepo"
	"starwings/internal/adapters/out/postgres/deliveryrepo"
	"starwings/internal/adapters/out/postgres/flightrepo"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/core/ports"
)

// eventSource is the face every tracked aggregate shows to the unit of work:
// a drainable log of recorded domain events.
type eventSource interface {
	DrainEvents() []kernel.DomainEvent
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection and one event notifier. Each business operation gets a fresh
// instance with its own transaction state.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	notifier ports.Notifier
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. Events drained from committed aggregates go to the notifier.
func NewGormUnitOfWorkFactory(db *gorm.DB, notifier ports.Notifier) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, notifier: notifier}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:       f.db,
		notifier: f.notifier,
		tracked:  make([]eventSource, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates persisted through it. On commit the events recorded by those
// aggregates are drained and published, in persistence order; on rollback
// they are discarded with the transaction.
type GormUnitOfWork struct {
	db       *gorm.DB
	tx       *gorm.DB
	notifier ports.Notifier
	tracked  []eventSource
}

// Begin initiates a new database transaction. Calling Begin twice on the
// same instance is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction and publishes the domain events of every
// tracked aggregate. Publishing failures do not undo the commit; the
// notifier is expected to log them.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, aggregate := range uow.tracked {
		for _, event := range aggregate.DrainEvents() {
			_ = uow.notifier.Publish(ctx, event)
		}
	}
	uow.tracked = uow.tracked[:0]

	return nil
}

// Rollback discards the transaction and the pending events of every tracked
// aggregate. Returns error if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = uow.tracked[:0]
	return err
}

// TrackAggregate registers an aggregate persisted within this unit of work.
// Called by the repository implementations on every Add/Update/Save.
func (uow *GormUnitOfWork) TrackAggregate(aggregate any) {
	if source, ok := aggregate.(eventSource); ok {
		uow.tracked = append(uow.tracked, source)
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// AccessRepository returns the role-registry repository bound to the current
// transaction.
func (uow *GormUnitOfWork) AccessRepository() ports.AccessRepository {
	return accessrepo.NewGormAccessRepository(uow.conn(), uow)
}

// ConopsRepository returns the dossier repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ConopsRepository() ports.ConopsRepository {
	return conopsrepo.NewGormConopsRepository(uow.conn(), uow)
}

// DeliveryRepository returns the delivery repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

// CrewRepository returns the roster repository bound to the current
// transaction.
func (uow *GormUnitOfWork) CrewRepository() ports.CrewRepository {
	return crewrepo.NewGormCrewRepository(uow.conn(), uow)
}

// FlightRepository returns the flight repository bound to the current
// transaction.
func (uow *GormUnitOfWork) FlightRepository() ports.FlightRepository {
	return flightrepo.NewGormFlightRepository(uow.conn(), uow)
}
