package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"starwings/internal/core/domain/model/kernel"
)

// GetFlightHandlesQueryHandler retrieves the directory of flight handles
// from the database.
type GetFlightHandlesQueryHandler struct {
	db *gorm.DB
}

// NewGetFlightHandlesQueryHandler creates a handler for handle directory queries.
func NewGetFlightHandlesQueryHandler(db *gorm.DB) GetFlightHandlesQueryHandler {
	return GetFlightHandlesQueryHandler{db: db}
}

// Handle executes the query to retrieve all flight handles in allocation order.
func (h GetFlightHandlesQueryHandler) Handle(
	ctx context.Context,
	query GetFlightHandlesQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireAnyRole(ctx, h.db, query.Caller(), adminRoles()); err != nil {
		return nil, err
	}

	handles := make([]kernel.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT handle
		FROM flights
		ORDER BY allocated_at
	`).Rows()
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
