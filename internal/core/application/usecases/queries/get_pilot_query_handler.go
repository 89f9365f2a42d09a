package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"starwings/internal/pkg/errs"
)

// GetPilotQueryHandler retrieves a single pilot roster slot from the database.
type GetPilotQueryHandler struct {
	db *gorm.DB
}

// NewGetPilotQueryHandler creates a handler for single-pilot queries.
func NewGetPilotQueryHandler(db *gorm.DB) GetPilotQueryHandler {
	return GetPilotQueryHandler{db: db}
}

// Handle executes the query. An unknown principal is ErrObjectNotFound.
func (h GetPilotQueryHandler) Handle(
	ctx context.Context,
	query GetPilotQuery,
) (PilotResponse, error) {
	if err := query.Validate(); err != nil {
		return PilotResponse{}, err
	}
	// Self-service lookup bypasses the admin gate.
	if !query.Caller().IsEqual(query.Principal()) {
		if err := requireAnyRole(ctx, h.db, query.Caller(), adminRoles()); err != nil {
			return PilotResponse{}, err
		}
	}

	var pilot PilotResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			slot_index,
			name,
			principal,
			deleted
		FROM pilots
		WHERE principal = ?
	`, query.Principal().String()).Row()

	err := row.Scan(
		&pilot.Index,
		&pilot.Name,
		&pilot.Principal,
		&pilot.Deleted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return PilotResponse{}, errs.NewObjectNotFoundError("pilotPrincipal", query.Principal().String())
	}
	if err != nil {
		return PilotResponse{}, err
	}

	if pilot.FlightHandles, err = crewFlightHandles(ctx, h.db, "pilot_flights", "pilot_index", pilot.Index); err != nil {
		return PilotResponse{}, err
	}

	return pilot, nil
}
