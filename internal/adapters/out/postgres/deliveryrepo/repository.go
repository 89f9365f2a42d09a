package deliveryrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"starwings/internal/core/domain/model/delivery"
	"starwings/internal/pkg/errs"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextSequence reserves the next creation sequence number, starting at 1.
// The reservation holds only within the surrounding transaction; Add derives
// the same number again when persisting.
func (r *GormDeliveryRepository) NextSequence(ctx context.Context) (int, error) {
	return r.nextSeq(ctx)
}

func (r *GormDeliveryRepository) nextSeq(ctx context.Context) (int, error) {
	var next int
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(seq), 0) + 1 FROM deliveries`).
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	seq, err := r.nextSeq(ctx)
	if err != nil {
		return err
	}

	dto := fromDomain(aggregate, seq)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		// A concurrent creation can reserve the same sequence; the unique
		// keys decide the winner.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsErrorWithCause("deliveryID", aggregate.ID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update saves an existing delivery to the database, preserving its creation
// sequence number.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var existing DeliveryDTO
	err := r.db.WithContext(ctx).First(&existing, "id = ?", aggregate.ID()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("deliveryID", aggregate.ID())
		}
		return err
	}

	dto := fromDomain(aggregate, existing.Seq)
	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves a delivery by its deterministic id.
func (r *GormDeliveryRepository) Get(ctx context.Context, id string) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
