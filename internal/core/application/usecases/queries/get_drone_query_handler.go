package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"starwings/internal/pkg/errs"
)

// GetDroneQueryHandler retrieves a single drone roster slot from the database.
type GetDroneQueryHandler struct {
	db *gorm.DB
}

// NewGetDroneQueryHandler creates a handler for single-drone queries.
func NewGetDroneQueryHandler(db *gorm.DB) GetDroneQueryHandler {
	return GetDroneQueryHandler{db: db}
}

// Handle executes the query. An unknown principal is ErrObjectNotFound.
func (h GetDroneQueryHandler) Handle(
	ctx context.Context,
	query GetDroneQuery,
) (DroneResponse, error) {
	if err := query.Validate(); err != nil {
		return DroneResponse{}, err
	}
	// Self-service lookup bypasses the admin gate.
	if !query.Caller().IsEqual(query.Principal()) {
		if err := requireAnyRole(ctx, h.db, query.Caller(), adminRoles()); err != nil {
			return DroneResponse{}, err
		}
	}

	var drone DroneResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			slot_index,
			drone_id,
			drone_type,
			principal,
			deleted
		FROM drones
		WHERE principal = ?
	`, query.Principal().String()).Row()

	err := row.Scan(
		&drone.Index,
		&drone.DroneID,
		&drone.DroneType,
		&drone.Principal,
		&drone.Deleted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return DroneResponse{}, errs.NewObjectNotFoundError("dronePrincipal", query.Principal().String())
	}
	if err != nil {
		return DroneResponse{}, err
	}

	if drone.FlightHandles, err = crewFlightHandles(ctx, h.db, "drone_flights", "drone_index", drone.Index); err != nil {
		return DroneResponse{}, err
	}

	return drone, nil
}
