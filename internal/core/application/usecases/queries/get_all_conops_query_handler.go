package queries

import (
	"context"

	"gorm.io/gorm"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/conops"
)

// GetAllConopsQueryHandler retrieves dossier information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllConopsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllConopsQueryHandler creates a handler for dossier list queries.
// Requires a GORM database connection for query execution.
func NewGetAllConopsQueryHandler(db *gorm.DB) GetAllConopsQueryHandler {
	return GetAllConopsQueryHandler{db: db}
}

// Handle executes the query to retrieve all dossiers with their air risks,
// ordered by dossier id.
func (h GetAllConopsQueryHandler) Handle(
	ctx context.Context,
	query GetAllConopsQuery,
) ([]ConopsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireAnyRole(ctx, h.db, query.Caller(), access.KnownRoles()); err != nil {
		return nil, err
	}

	dossiers := make([]ConopsResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var dossier ConopsResponse
		err = rows.Scan(
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
		if err != nil {
			return nil, err
		}
		dossiers = append(dossiers, dossier)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range dossiers {
		dossiers[i].AirRisks, err = conopsAirRisks(ctx, h.db, dossiers[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return dossiers, nil
}

// conopsAirRisks loads the declared air risks of one dossier in declaration
// order. Catalog entries carry no validation mark.
func conopsAirRisks(ctx context.Context, db *gorm.DB, conopsID int) ([]AirRiskResponse, error) {
	risks := make([]AirRiskResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			name,
			risk_type
		FROM conops_air_risks
		WHERE conops_id = ?
		ORDER BY position
	`, conopsID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var risk AirRiskResponse
		var riskType int

		if err = rows.Scan(&risk.Name, &riskType); err != nil {
			return nil, err
		}
		risk.RiskType = conops.RiskType(riskType).String()
		risks = append(risks, risk)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return risks, nil
}
