package crew

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

// ErrPilotIsNotConstructed is returned when a Pilot instance was not created
// through NewPilot or RestorePilot.
var ErrPilotIsNotConstructed = errors.New("Pilot must be created via NewPilot or RestorePilot")

// Pilot is one entry of the master directory's pilot roster.
//
// Roster slots are append-only: a pilot's index is assigned once and never
// reissued. Deletion is a soft flag; re-adding a deleted principal reinstates
// the same slot, overwrites the descriptive fields, and keeps the accumulated
// flight handle history.
type Pilot struct {
	kernel.EventRecorder

	index         int
	deleted       bool
	name          string
	principal     kernel.Principal
	flightHandles []kernel.UUID

	guard guard.ConstructorGuard
}

// PilotSnapshot is the point-in-time copy of a pilot that a flight embeds at
// initialization. Later roster edits never change a flight's recorded crew.
type PilotSnapshot struct {
	Index     int
	Name      string
	Principal kernel.Principal
}

// NewPilot creates a roster entry at the given index and records PilotAdded.
func NewPilot(index int, principal kernel.Principal, name string) (*Pilot, error) {
	p := &Pilot{
		index: index,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setIndex(index),
		p.setPrincipal(principal),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	p.Record(PilotAdded{Principal: principal, Index: index, Name: name})
	return p, nil
}

// RestorePilot reconstructs a roster entry from persistence. Records no event.
func RestorePilot(
	index int, principal kernel.Principal, name string,
	deleted bool, flightHandles []kernel.UUID,
) (*Pilot, error) {
	p, err := NewPilot(index, principal, name)
	if err != nil {
		return nil, err
	}
	p.deleted = deleted
	p.flightHandles = append([]kernel.UUID(nil), flightHandles...)
	p.DrainEvents()
	return p, nil
}

// Validate ensures the entry was built through a constructor.
func (p *Pilot) Validate() error {
	if p == nil {
		return ErrPilotIsNotConstructed
	}
	return p.guard.Validate(ErrPilotIsNotConstructed)
}

// Index returns the stable roster slot of this pilot.
func (p *Pilot) Index() int { return p.index }

// Name returns the pilot's display name.
func (p *Pilot) Name() string { return p.name }

// Principal returns the pilot's identity.
func (p *Pilot) Principal() kernel.Principal { return p.principal }

// IsDeleted reports whether the entry is soft-deleted.
func (p *Pilot) IsDeleted() bool { return p.deleted }

// FlightHandles returns a copy of the handles of every flight created for
// this pilot, in creation order. History survives soft deletion.
func (p *Pilot) FlightHandles() []kernel.UUID {
	return append([]kernel.UUID(nil), p.flightHandles...)
}

// Snapshot returns the point-in-time copy a flight embeds at initialization.
func (p *Pilot) Snapshot() PilotSnapshot {
	return PilotSnapshot{Index: p.index, Name: p.name, Principal: p.principal}
}

// Delete soft-deletes the entry, keeping the slot and its history.
// Deleting an already-deleted entry is NotFound.
func (p *Pilot) Delete() error {
	if p.deleted {
		return errs.NewObjectNotFoundError("pilotPrincipal", p.principal.String())
	}
	p.deleted = true
	p.Record(PilotDeleted{Principal: p.principal, Index: p.index})
	return nil
}

// Reinstate clears the deletion flag and overwrites the descriptive fields,
// reusing the slot. Only deleted entries can be reinstated; a live duplicate
// is AlreadyExists ("pilot already added").
func (p *Pilot) Reinstate(name string) error {
	if !p.deleted {
		return errs.NewAlreadyExistsError("pilot", p.principal.String())
	}
	if err := p.setName(name); err != nil {
		return err
	}
	p.deleted = false
	p.Record(PilotAdded{Principal: p.principal, Index: p.index, Name: name})
	return nil
}

// RecordFlight appends a newly created flight's handle. Called by the flight
// factory use case only; the handle list is append-only.
func (p *Pilot) RecordFlight(handle kernel.UUID) error {
	if err := handle.Validate(); err != nil {
		return err
	}
	p.flightHandles = append(p.flightHandles, handle)
	return nil
}

func (p *Pilot) setIndex(index int) error {
	if index < 0 {
		return errs.NewValueIsInvalidError("pilot index")
	}
	p.index = index
	return nil
}

func (p *Pilot) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	p.principal = principal
	return nil
}

func (p *Pilot) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("pilot name")
	}
	p.name = name
	return nil
}
