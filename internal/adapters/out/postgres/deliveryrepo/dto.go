// Package deliveryrepo persists delivery records. The creation sequence
// column feeds the deterministic delivery id derivation and fixes the
// listing order.
package deliveryrepo

import (
	"starwings/internal/core/domain/model/delivery"
	"starwings/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting deliveries.
type DeliveryDTO struct {
	ID              string `gorm:"type:varchar(64);primaryKey"`
	Seq             int    `gorm:"type:int;not null;uniqueIndex"`
	SupplierOrderID string `gorm:"type:varchar(255);not null"`
	Status          int    `gorm:"type:smallint;not null"`
	FromName        string `gorm:"column:from_name;type:varchar(255);not null"`
	FromPrincipal   string `gorm:"type:varchar(255);not null"`
	ToName          string `gorm:"column:to_name;type:varchar(255);not null"`
	ToPrincipal     string `gorm:"type:varchar(255);not null"`
	FromHubID       string `gorm:"type:varchar(255);not null"`
	ToHubID         string `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
// The sequence number is not part of the aggregate; the repository assigns
// it on Add and preserves it on Update.
func fromDomain(aggregate *delivery.Delivery, seq int) DeliveryDTO {
	return DeliveryDTO{
		ID:              aggregate.ID(),
		Seq:             seq,
		SupplierOrderID: aggregate.SupplierOrderID(),
		Status:          int(aggregate.Status()),
		FromName:        aggregate.From(),
		FromPrincipal:   aggregate.FromPrincipal().String(),
		ToName:          aggregate.To(),
		ToPrincipal:     aggregate.ToPrincipal().String(),
		FromHubID:       aggregate.FromHubID(),
		ToHubID:         aggregate.ToHubID(),
	}
}

// toDomain converts a database DTO to a delivery aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	fromPrincipal, err := kernel.NewPrincipal(dto.FromPrincipal)
	if err != nil {
		return nil, err
	}
	toPrincipal, err := kernel.NewPrincipal(dto.ToPrincipal)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		dto.ID, dto.SupplierOrderID,
		delivery.Status(dto.Status),
		dto.FromName, fromPrincipal,
		dto.ToName, toPrincipal,
		dto.FromHubID, dto.ToHubID,
	)
}
