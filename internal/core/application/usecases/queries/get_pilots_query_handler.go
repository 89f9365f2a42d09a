package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"starwings/internal/core/domain/model/kernel"
)

// GetPilotsQueryHandler retrieves the pilot roster from the database.
type GetPilotsQueryHandler struct {
	db *gorm.DB
}

// NewGetPilotsQueryHandler creates a handler for pilot roster queries.
func NewGetPilotsQueryHandler(db *gorm.DB) GetPilotsQueryHandler {
	return GetPilotsQueryHandler{db: db}
}

// Handle executes the query to retrieve all pilot slots ordered by index,
// each with its flight history.
func (h GetPilotsQueryHandler) Handle(
	ctx context.Context,
	query GetPilotsQuery,
) ([]PilotResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireAnyRole(ctx, h.db, query.Caller(), adminRoles()); err != nil {
		return nil, err
	}

	pilots := make([]PilotResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			slot_index,
			name,
			principal,
			deleted
		FROM pilots
		ORDER BY slot_index
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pilot PilotResponse
		err = rows.Scan(
			&pilot.Index,
			&pilot.Name,
			&pilot.Principal,
			&pilot.Deleted,
		)
		if err != nil {
			return nil, err
		}
		pilots = append(pilots, pilot)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range pilots {
		pilots[i].FlightHandles, err = crewFlightHandles(ctx, h.db, "pilot_flights", "pilot_index", pilots[i].Index)
		if err != nil {
			return nil, err
		}
	}

	return pilots, nil
}

// crewFlightHandles loads the flight history of one roster slot in
// allocation order.
func crewFlightHandles(ctx context.Context, db *gorm.DB, table, indexColumn string, index int) ([]kernel.UUID, error) {
	handles := make([]kernel.UUID, 0)

	rows, err := db.WithContext(ctx).Raw(
		`SELECT handle FROM `+table+` WHERE `+indexColumn+` = ? ORDER BY position`,
		index,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		handle, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		handles = append(handles, handle)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return handles, nil
}
