package crewrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"starwings/internal/core/domain/model/crew"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
)

// GormCrewRepository implements CrewRepository using GORM.
type GormCrewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormCrewRepository creates a new GORM roster repository.
func NewGormCrewRepository(db *gorm.DB, tracker aggregateTracker) *GormCrewRepository {
	return &GormCrewRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextPilotIndex reserves the next pilot roster slot, starting at 0.
func (r *GormCrewRepository) NextPilotIndex(ctx context.Context) (int, error) {
	var next int
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(slot_index), -1) + 1 FROM pilots`).
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// AddPilot saves a new pilot slot to the database.
func (r *GormCrewRepository) AddPilot(ctx context.Context, pilot *crew.Pilot) error {
	if err := pilot.Validate(); err != nil {
		return err
	}

	dto := pilotFromDomain(pilot)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		// A concurrent registration can reserve the same slot; the unique
		// keys decide the winner.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsErrorWithCause("pilotPrincipal", pilot.Principal().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(pilot)
	return nil
}

// UpdatePilot saves an existing pilot slot to the database, flight history
// included.
func (r *GormCrewRepository) UpdatePilot(ctx context.Context, pilot *crew.Pilot) error {
	if err := pilot.Validate(); err != nil {
		return err
	}

	dto := pilotFromDomain(pilot)

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(pilot)
	return nil
}

// GetPilot retrieves a pilot slot by principal, deleted entries included.
func (r *GormCrewRepository) GetPilot(ctx context.Context, principal kernel.Principal) (*crew.Pilot, error) {
	if err := principal.Validate(); err != nil {
		return nil, err
	}

	var dto PilotDTO
	err := r.db.WithContext(ctx).
		Preload("Flights", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "principal = ?", principal.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pilotPrincipal", principal.String())
		}
		return nil, err
	}

	return pilotToDomain(dto)
}

// NextDroneIndex reserves the next drone roster slot, starting at 0.
func (r *GormCrewRepository) NextDroneIndex(ctx context.Context) (int, error) {
	var next int
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(slot_index), -1) + 1 FROM drones`).
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// AddDrone saves a new drone slot to the database.
func (r *GormCrewRepository) AddDrone(ctx context.Context, drone *crew.Drone) error {
	if err := drone.Validate(); err != nil {
		return err
	}

	dto := droneFromDomain(drone)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsErrorWithCause("dronePrincipal", drone.Principal().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(drone)
	return nil
}

// UpdateDrone saves an existing drone slot to the database.
func (r *GormCrewRepository) UpdateDrone(ctx context.Context, drone *crew.Drone) error {
	if err := drone.Validate(); err != nil {
		return err
	}

	dto := droneFromDomain(drone)

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(drone)
	return nil
}

// GetDrone retrieves a drone slot by principal, deleted entries included.
func (r *GormCrewRepository) GetDrone(ctx context.Context, principal kernel.Principal) (*crew.Drone, error) {
	if err := principal.Validate(); err != nil {
		return nil, err
	}

	var dto DroneDTO
	err := r.db.WithContext(ctx).
		Preload("Flights", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "principal = ?", principal.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dronePrincipal", principal.String())
		}
		return nil, err
	}

	return droneToDomain(dto)
}
