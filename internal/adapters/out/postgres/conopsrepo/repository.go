package conopsrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"starwings/internal/core/domain/model/conops"
	"starwings/internal/pkg/errs"
)

// GormConopsRepository implements ConopsRepository using GORM.
type GormConopsRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormConopsRepository creates a new GORM dossier repository.
func NewGormConopsRepository(db *gorm.DB, tracker aggregateTracker) *GormConopsRepository {
	return &GormConopsRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextID reserves the next sequential dossier id, starting at 1.
func (r *GormConopsRepository) NextID(ctx context.Context) (int, error) {
	var next int
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(id), 0) + 1 FROM conops`).
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// Add saves a new dossier to the database.
func (r *GormConopsRepository) Add(ctx context.Context, aggregate *conops.Conops) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		// A concurrent creation can reserve the same id; the primary key
		// decides the winner.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsErrorWithCause("conopsID", aggregate.ID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update saves an existing dossier to the database.
func (r *GormConopsRepository) Update(ctx context.Context, aggregate *conops.Conops) error {
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

// Get retrieves a dossier by id.
func (r *GormConopsRepository) Get(ctx context.Context, id int) (*conops.Conops, error) {
	var dto ConopsDTO
	err := r.db.WithContext(ctx).
		Preload("AirRisks", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("conopsID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
