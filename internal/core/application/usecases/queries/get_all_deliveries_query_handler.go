package queries

import (
	"context"

	"gorm.io/gorm"

	"starwings/internal/core/domain/model/access"
)

// GetAllDeliveriesQueryHandler retrieves the full delivery list from the
// database, in creation order.
type GetAllDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDeliveriesQueryHandler creates a handler for delivery list queries.
func NewGetAllDeliveriesQueryHandler(db *gorm.DB) GetAllDeliveriesQueryHandler {
	return GetAllDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all deliveries.
func (h GetAllDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAllDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireAnyRole(ctx, h.db, query.Caller(), access.KnownRoles()); err != nil {
		return nil, err
	}

	deliveries := make([]DeliveryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT ` + deliveryColumns + ` FROM deliveries ORDER BY seq`,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		record, scanErr := scanDelivery(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, record)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
