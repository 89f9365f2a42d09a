package accessrepo

import (
	"context"

	"gorm.io/gorm"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/pkg/errs"
)

// GormAccessRepository implements AccessRepository using GORM.
type GormAccessRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormAccessRepository creates a new GORM access repository.
func NewGormAccessRepository(db *gorm.DB, tracker aggregateTracker) *GormAccessRepository {
	return &GormAccessRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the full registry. A registry that was never bootstrapped
// has no grants at all and surfaces as ObjectNotFound.
func (r *GormAccessRepository) Get(ctx context.Context) (*access.Registry, error) {
	var grants []RoleGrantDTO
	if err := r.db.WithContext(ctx).Find(&grants).Error; err != nil {
		return nil, err
	}
	if len(grants) == 0 {
		return nil, errs.NewObjectNotFoundError("registry", "grants")
	}

	var admins []RoleAdminDTO
	if err := r.db.WithContext(ctx).Find(&admins).Error; err != nil {
		return nil, err
	}

	return toDomain(grants, admins)
}

// Save persists the registry state by replacing both row sets. The registry
// is small (a handful of roles, tens of principals), so replace-all is
// simpler than diffing and stays atomic inside the surrounding transaction.
func (r *GormAccessRepository) Save(ctx context.Context, registry *access.Registry) error {
	if err := registry.Validate(); err != nil {
		return err
	}

	grants, admins := fromDomain(registry)

	db := r.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&RoleGrantDTO{}).Error; err != nil {
		return err
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&RoleAdminDTO{}).Error; err != nil {
		return err
	}
	if len(grants) > 0 {
		if err := db.Create(&grants).Error; err != nil {
			return err
		}
	}
	if len(admins) > 0 {
		if err := db.Create(&admins).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(registry)
	return nil
}
