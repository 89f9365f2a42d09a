package crew

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

// ErrDroneIsNotConstructed is returned when a Drone instance was not created
// through NewDrone or RestoreDrone.
var ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone or RestoreDrone")

// Drone is one entry of the master directory's drone roster. It follows the
// same slot lifecycle as Pilot: stable index, soft deletion, reinstatement
// with history kept.
type Drone struct {
	kernel.EventRecorder

	index         int
	deleted       bool
	droneID       string
	droneType     string
	principal     kernel.Principal
	flightHandles []kernel.UUID

	guard guard.ConstructorGuard
}

// DroneSnapshot is the point-in-time copy of a drone that a flight embeds at
// initialization.
type DroneSnapshot struct {
	Index     int
	DroneID   string
	DroneType string
	Principal kernel.Principal
}

// NewDrone creates a roster entry at the given index and records DroneAdded.
func NewDrone(index int, principal kernel.Principal, droneID, droneType string) (*Drone, error) {
	d := &Drone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setIndex(index),
		d.setPrincipal(principal),
		d.setDroneID(droneID),
		d.setDroneType(droneType),
	); err != nil {
		return nil, err
	}

	d.Record(DroneAdded{Principal: principal, Index: index, DroneID: droneID})
	return d, nil
}

// RestoreDrone reconstructs a roster entry from persistence. Records no event.
func RestoreDrone(
	index int, principal kernel.Principal, droneID, droneType string,
	deleted bool, flightHandles []kernel.UUID,
) (*Drone, error) {
	d, err := NewDrone(index, principal, droneID, droneType)
	if err != nil {
		return nil, err
	}
	d.deleted = deleted
	d.flightHandles = append([]kernel.UUID(nil), flightHandles...)
	d.DrainEvents()
	return d, nil
}

// Validate ensures the entry was built through a constructor.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// Index returns the stable roster slot of this drone.
func (d *Drone) Index() int { return d.index }

// DroneID returns the operator-assigned identifier, e.g. a serial number.
func (d *Drone) DroneID() string { return d.droneID }

// DroneType returns the airframe model.
func (d *Drone) DroneType() string { return d.droneType }

// Principal returns the drone's identity.
func (d *Drone) Principal() kernel.Principal { return d.principal }

// IsDeleted reports whether the entry is soft-deleted.
func (d *Drone) IsDeleted() bool { return d.deleted }

// FlightHandles returns a copy of the handles of every flight created for
// this drone, in creation order.
func (d *Drone) FlightHandles() []kernel.UUID {
	return append([]kernel.UUID(nil), d.flightHandles...)
}

// Snapshot returns the point-in-time copy a flight embeds at initialization.
func (d *Drone) Snapshot() DroneSnapshot {
	return DroneSnapshot{
		Index:     d.index,
		DroneID:   d.droneID,
		DroneType: d.droneType,
		Principal: d.principal,
	}
}

// Delete soft-deletes the entry, keeping the slot and its history.
func (d *Drone) Delete() error {
	if d.deleted {
		return errs.NewObjectNotFoundError("dronePrincipal", d.principal.String())
	}
	d.deleted = true
	d.Record(DroneDeleted{Principal: d.principal, Index: d.index})
	return nil
}

// Reinstate clears the deletion flag and overwrites the descriptive fields,
// reusing the slot.
func (d *Drone) Reinstate(droneID, droneType string) error {
	if !d.deleted {
		return errs.NewAlreadyExistsError("drone", d.principal.String())
	}
	if err := errors.Join(
		d.setDroneID(droneID),
		d.setDroneType(droneType),
	); err != nil {
		return err
	}
	d.deleted = false
	d.Record(DroneAdded{Principal: d.principal, Index: d.index, DroneID: droneID})
	return nil
}

// RecordFlight appends a newly created flight's handle.
func (d *Drone) RecordFlight(handle kernel.UUID) error {
	if err := handle.Validate(); err != nil {
		return err
	}
	d.flightHandles = append(d.flightHandles, handle)
	return nil
}

func (d *Drone) setIndex(index int) error {
	if index < 0 {
		return errs.NewValueIsInvalidError("drone index")
	}
	d.index = index
	return nil
}

func (d *Drone) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	d.principal = principal
	return nil
}

func (d *Drone) setDroneID(droneID string) error {
	if droneID == "" {
		return errs.NewValueIsRequiredError("drone id")
	}
	d.droneID = droneID
	return nil
}

func (d *Drone) setDroneType(droneType string) error {
	if droneType == "" {
		return errs.NewValueIsRequiredError("drone type")
	}
	d.droneType = droneType
	return nil
}
