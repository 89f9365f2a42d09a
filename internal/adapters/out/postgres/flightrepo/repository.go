package flightrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
)

// GormFlightRepository implements FlightRepository using GORM.
type GormFlightRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormFlightRepository creates a new GORM flight repository.
func NewGormFlightRepository(db *gorm.DB, tracker aggregateTracker) *GormFlightRepository {
	return &GormFlightRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly allocated flight. A handle already present in the
// directory surfaces as AlreadyExists.
func (r *GormFlightRepository) Add(ctx context.Context, aggregate *flight.Flight) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	taken, err := r.Exists(ctx, aggregate.Handle())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewAlreadyExistsError("flight handle", aggregate.Handle().String())
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update saves an existing flight, replacing its air-risk copies, track and
// incident log.
func (r *GormFlightRepository) Update(ctx context.Context, aggregate *flight.Flight) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves a flight by handle with all its owned rows.
func (r *GormFlightRepository) Get(ctx context.Context, handle kernel.UUID) (*flight.Flight, error) {
	if err := handle.Validate(); err != nil {
		return nil, err
	}

	var dto FlightDTO
	err := r.db.WithContext(ctx).
		Preload("AirRisks", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Checkpoints", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("RiskEvents", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "handle = ?", handle.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("flightHandle", handle.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a handle is already taken, without loading the record.
func (r *GormFlightRepository) Exists(ctx context.Context, handle kernel.UUID) (bool, error) {
	if err := handle.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&FlightDTO{}).
		Where("handle = ?", handle.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAllHandles returns every allocated handle in allocation order.
func (r *GormFlightRepository) GetAllHandles(ctx context.Context) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&FlightDTO{}).
		Order("allocated_at").
		Pluck("handle", &raw).Error
	if err != nil {
		return nil, err
	}

	handles := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		handle, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		handles = append(handles, handle)
	}
	return handles, nil
}
