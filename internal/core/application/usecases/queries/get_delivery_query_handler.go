package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/delivery"
	"starwings/internal/pkg/errs"
)

const deliveryColumns = `
	id,
	supplier_order_id,
	status,
	from_name,
	from_principal,
	to_name,
	to_principal,
	from_hub_id,
	to_hub_id
`

// GetDeliveryQueryHandler retrieves a single delivery from the database.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single-delivery queries.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the query. An unknown id is ErrObjectNotFound.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}
	if err := requireAnyRole(ctx, h.db, query.Caller(), access.KnownRoles()); err != nil {
		return DeliveryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT `+deliveryColumns+` FROM deliveries WHERE id = ?`,
		query.DeliveryID(),
	).Row()

	record, err := scanDelivery(row)
	if errors.Is(err, sql.ErrNoRows) {
		return DeliveryResponse{}, errs.NewObjectNotFoundError("deliveryID", query.DeliveryID())
	}
	if err != nil {
		return DeliveryResponse{}, err
	}

	return record, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDelivery(row rowScanner) (DeliveryResponse, error) {
	var record DeliveryResponse
	err := row.Scan(
		&record.ID,
		&record.SupplierOrderID,
		&record.StatusCode,
		&record.From,
		&record.FromPrincipal,
		&record.To,
		&record.ToPrincipal,
		&record.FromHubID,
		&record.ToHubID,
	)
	if err != nil {
		return DeliveryResponse{}, err
	}
	record.Status = delivery.Status(record.StatusCode).String()
	return record, nil
}
