package delivery

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New(
	"Delivery must be created via NewDelivery or RestoreDelivery")

// DeliveryID derives the system-generated identifier of a delivery from its
// submission sequence number and the supplier's order id. The derivation is a
// pure digest so test runs and replays produce identical ids; sequence numbers
// are never reused, so neither are ids.
func DeliveryID(seq int, supplierOrderID string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "delivery|%d|%s", seq, supplierOrderID))
	return hex.EncodeToString(sum[:])
}

// Delivery is one parcel-delivery record in the registry.
//
// Invariants:
//   - the id is assigned at creation and never changes or gets recycled
//   - a new record always starts at NoInfo, whatever the caller submitted
//   - SetStatus performs no legality check beyond the enum range (free-form
//     status correction is an accepted use)
type Delivery struct {
	kernel.EventRecorder

	id              string
	supplierOrderID string
	status          Status
	from            string
	fromPrincipal   kernel.Principal
	to              string
	toPrincipal     kernel.Principal
	fromHubID       string
	toHubID         string

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery record with status NoInfo and records a
// DeliveryCreated event. The id must come from DeliveryID.
func NewDelivery(
	id, supplierOrderID string,
	from string, fromPrincipal kernel.Principal,
	to string, toPrincipal kernel.Principal,
	fromHubID, toHubID string,
) (*Delivery, error) {
	d := &Delivery{
		status: NoInfo,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setSupplierOrderID(supplierOrderID),
		d.setParties(from, fromPrincipal, to, toPrincipal),
	); err != nil {
		return nil, err
	}
	d.fromHubID = fromHubID
	d.toHubID = toHubID

	d.Record(DeliveryCreated{DeliveryID: id})
	return d, nil
}

// RestoreDelivery reconstructs a record from persistence. Records no event.
func RestoreDelivery(
	id, supplierOrderID string,
	status Status,
	from string, fromPrincipal kernel.Principal,
	to string, toPrincipal kernel.Principal,
	fromHubID, toHubID string,
) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	d, err := NewDelivery(id, supplierOrderID, from, fromPrincipal, to, toPrincipal, fromHubID, toHubID)
	if err != nil {
		return nil, err
	}
	d.status = status
	d.DrainEvents()
	return d, nil
}

// Validate ensures the record was built through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the system-generated delivery id.
func (d *Delivery) ID() string { return d.id }

// SupplierOrderID returns the supplier-side order reference.
func (d *Delivery) SupplierOrderID() string { return d.supplierOrderID }

// Status returns the current progress marker.
func (d *Delivery) Status() Status { return d.status }

// From returns the sender's display name.
func (d *Delivery) From() string { return d.from }

// FromPrincipal returns the sender's identity.
func (d *Delivery) FromPrincipal() kernel.Principal { return d.fromPrincipal }

// To returns the recipient's display name.
func (d *Delivery) To() string { return d.to }

// ToPrincipal returns the recipient's identity.
func (d *Delivery) ToPrincipal() kernel.Principal { return d.toPrincipal }

// FromHubID returns the departure hub reference.
func (d *Delivery) FromHubID() string { return d.fromHubID }

// ToHubID returns the destination hub reference.
func (d *Delivery) ToHubID() string { return d.toHubID }

// SetStatus overwrites the status with any in-range value and records a
// DeliveryStatusUpdated event carrying both old and new values. There is no
// monotonicity or legality check on the transition.
func (d *Delivery) SetStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	old := d.status
	d.status = newStatus
	d.Record(DeliveryStatusUpdated{DeliveryID: d.id, OldStatus: old, NewStatus: newStatus})
	return nil
}

func (d *Delivery) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("deliveryId")
	}
	d.id = id
	return nil
}

func (d *Delivery) setSupplierOrderID(supplierOrderID string) error {
	if supplierOrderID == "" {
		return errs.NewValueIsRequiredError("supplierOrderId")
	}
	d.supplierOrderID = supplierOrderID
	return nil
}

func (d *Delivery) setParties(
	from string, fromPrincipal kernel.Principal,
	to string, toPrincipal kernel.Principal,
) error {
	if err := errors.Join(fromPrincipal.Validate(), toPrincipal.Validate()); err != nil {
		return err
	}
	d.from = from
	d.fromPrincipal = fromPrincipal
	d.to = to
	d.toPrincipal = toPrincipal
	return nil
}
