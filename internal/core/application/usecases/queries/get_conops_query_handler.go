package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/pkg/errs"
)

// GetConopsQueryHandler retrieves a single dossier from the database.
type GetConopsQueryHandler struct {
	db *gorm.DB
}

// NewGetConopsQueryHandler creates a handler for single-dossier queries.
func NewGetConopsQueryHandler(db *gorm.DB) GetConopsQueryHandler {
	return GetConopsQueryHandler{db: db}
}

// Handle executes the query. An unknown id is ErrObjectNotFound.
func (h GetConopsQueryHandler) Handle(
	ctx context.Context,
	query GetConopsQuery,
) (ConopsResponse, error) {
	if err := query.Validate(); err != nil {
		return ConopsResponse{}, err
	}
	if err := requireAnyRole(ctx, h.db, query.Caller(), access.KnownRoles()); err != nil {
		return ConopsResponse{}, err
	}

	var dossier ConopsResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			starting_point,
			end_point,
			cross_road,
			exclusion_zone,
			grc,
			arc,
			activated
		FROM conops
		WHERE id = ?
	`, query.ConopsID()).Row()

	err := row.Scan(
		&dossier.ID,
		&dossier.Name,
		&dossier.StartingPoint,
		&dossier.EndPoint,
		&dossier.CrossRoad,
		&dossier.ExclusionZone,
		&dossier.GRC,
		&dossier.ARC,
		&dossier.Activated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ConopsResponse{}, errs.NewObjectNotFoundError("conopsID", query.ConopsID())
	}
	if err != nil {
		return ConopsResponse{}, err
	}

	dossier.AirRisks, err = conopsAirRisks(ctx, h.db, dossier.ID)
	if err != nil {
		return ConopsResponse{}, err
	}

	return dossier, nil
}
