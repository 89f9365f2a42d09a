package queries

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves one delivery by its derived id. Open to any
// principal holding a known role.
type GetDeliveryQuery struct {
	caller     kernel.Principal
	deliveryID string
	guard      guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for the delivery with the given id.
func NewGetDeliveryQuery(caller kernel.Principal, deliveryID string) (GetDeliveryQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	if deliveryID == "" {
		return GetDeliveryQuery{}, errs.NewValueIsRequiredError("deliveryID")
	}
	return GetDeliveryQuery{caller: caller, deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// Caller returns the requesting principal.
func (q GetDeliveryQuery) Caller() kernel.Principal {
	return q.caller
}

// DeliveryID returns the requested delivery id.
func (q GetDeliveryQuery) DeliveryID() string {
	return q.deliveryID
}

// DeliveryResponse represents one delivery in the read model. Status carries
// the enum name, StatusCode the raw value.
type DeliveryResponse struct {
	ID              string
	SupplierOrderID string
	Status          string
	StatusCode      int
	From            string
	FromPrincipal   string
	To              string
	ToPrincipal     string
	FromHubID       string
	ToHubID         string
}
