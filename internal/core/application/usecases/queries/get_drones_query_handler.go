package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDronesQueryHandler retrieves the drone roster from the database.
type GetDronesQueryHandler struct {
	db *gorm.DB
}

// NewGetDronesQueryHandler creates a handler for drone roster queries.
func NewGetDronesQueryHandler(db *gorm.DB) GetDronesQueryHandler {
	return GetDronesQueryHandler{db: db}
}

// Handle executes the query to retrieve all drone slots ordered by index,
// each with its flight history.
func (h GetDronesQueryHandler) Handle(
	ctx context.Context,
	query GetDronesQuery,
) ([]DroneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireAnyRole(ctx, h.db, query.Caller(), adminRoles()); err != nil {
		return nil, err
	}

	drones := make([]DroneResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			slot_index,
			drone_id,
			drone_type,
			principal,
			deleted
		FROM drones
		ORDER BY slot_index
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var drone DroneResponse
		err = rows.Scan(
			&drone.Index,
			&drone.DroneID,
			&drone.DroneType,
			&drone.Principal,
			&drone.Deleted,
		)
		if err != nil {
			return nil, err
		}
		drones = append(drones, drone)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range drones {
		drones[i].FlightHandles, err = crewFlightHandles(ctx, h.db, "drone_flights", "drone_index", drones[i].Index)
		if err != nil {
			return nil, err
		}
	}

	return drones, nil
}
