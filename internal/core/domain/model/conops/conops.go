package conops

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

// ErrConopsIsNotConstructed is returned when a Conops instance was not created
// through NewConops or RestoreConops.
var ErrConopsIsNotConstructed = errors.New(
	"Conops must be created via NewConops or RestoreConops")

// AirRiskInput is the caller-facing shape of one air risk at creation time.
// The validated flag is never accepted from callers; every stored entry starts
// unvalidated.
type AirRiskInput struct {
	Name     string
	RiskType RiskType
}

// Conops is one operational-concept record: the regulatory dossier of a
// delivery route, including its ground/air risk classification and the list of
// air risks a pilot must sign off before flying the route.
//
// Invariants:
//   - ids are sequential, assigned by the registry, and never recycled
//   - every core field is immutable after creation; only the activation flag
//     changes, via Enable/Disable
//   - the embedded air risks are owned by this record and always stored with
//     validated=false (validation happens on each flight's own copy)
type Conops struct {
	kernel.EventRecorder

	id            int
	name          string
	startingPoint string
	endPoint      string
	crossRoad     string
	exclusionZone string
	grc           int
	arc           int
	airRisks      []AirRisk
	activated     bool

	guard guard.ConstructorGuard
}

// NewConops creates an activated CONOPS record with the given sequential id.
// All air risks are stored unvalidated. Records a ConopsCreated event.
func NewConops(
	id int,
	name, startingPoint, endPoint, crossRoad, exclusionZone string,
	airRisks []AirRiskInput,
	grc, arc int,
) (*Conops, error) {
	c := &Conops{
		id:        id,
		activated: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setRoute(startingPoint, endPoint, crossRoad, exclusionZone),
		c.setRiskClasses(grc, arc),
		c.setAirRisks(airRisks),
		validateID(id),
	); err != nil {
		return nil, err
	}

	c.Record(ConopsCreated{ID: id, Name: name})
	return c, nil
}

// RestoreConops reconstructs a record from persistence, including its
// activation state and stored air risks. Records no event.
func RestoreConops(
	id int,
	name, startingPoint, endPoint, crossRoad, exclusionZone string,
	airRisks []AirRisk,
	grc, arc int,
	activated bool,
) (*Conops, error) {
	inputs := make([]AirRiskInput, 0, len(airRisks))
	for _, risk := range airRisks {
		inputs = append(inputs, AirRiskInput{Name: risk.Name(), RiskType: risk.RiskType()})
	}

	c, err := NewConops(id, name, startingPoint, endPoint, crossRoad, exclusionZone, inputs, grc, arc)
	if err != nil {
		return nil, err
	}
	c.activated = activated
	c.DrainEvents()
	return c, nil
}

// Validate ensures the record was built through a constructor.
func (c *Conops) Validate() error {
	if c == nil {
		return ErrConopsIsNotConstructed
	}
	return c.guard.Validate(ErrConopsIsNotConstructed)
}

// ID returns the sequential registry id.
func (c *Conops) ID() int { return c.id }

// Name returns the dossier name.
func (c *Conops) Name() string { return c.name }

// StartingPoint returns the route's departure description.
func (c *Conops) StartingPoint() string { return c.startingPoint }

// EndPoint returns the route's arrival description.
func (c *Conops) EndPoint() string { return c.endPoint }

// CrossRoad returns the route's crossing description.
func (c *Conops) CrossRoad() string { return c.crossRoad }

// ExclusionZone returns the route's exclusion-zone description.
func (c *Conops) ExclusionZone() string { return c.exclusionZone }

// GRC returns the ground risk classification.
func (c *Conops) GRC() int { return c.grc }

// ARC returns the air risk classification.
func (c *Conops) ARC() int { return c.arc }

// Activated reports whether the dossier is currently usable for new flights.
func (c *Conops) Activated() bool { return c.activated }

// AirRisks returns a copy of the embedded air-risk list. The copy is what a
// flight snapshots at initialization time.
func (c *Conops) AirRisks() []AirRisk {
	out := make([]AirRisk, len(c.airRisks))
	copy(out, c.airRisks)
	return out
}

// Enable activates the dossier. Idempotent; records ConopsEnabled.
func (c *Conops) Enable() {
	c.activated = true
	c.Record(ConopsEnabled{ID: c.id})
}

// Disable suspends the dossier. Idempotent; records ConopsDisabled.
func (c *Conops) Disable() {
	c.activated = false
	c.Record(ConopsDisabled{ID: c.id})
}

func validateID(id int) error {
	if id < 0 {
		return errs.NewValueIsInvalidError("conops id")
	}
	return nil
}

func (c *Conops) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Conops) setRoute(startingPoint, endPoint, crossRoad, exclusionZone string) error {
	if startingPoint == "" {
		return errs.NewValueIsRequiredError("startingPoint")
	}
	if endPoint == "" {
		return errs.NewValueIsRequiredError("endPoint")
	}
	c.startingPoint = startingPoint
	c.endPoint = endPoint
	c.crossRoad = crossRoad
	c.exclusionZone = exclusionZone
	return nil
}

func (c *Conops) setRiskClasses(grc, arc int) error {
	if grc < 0 {
		return errs.NewValueIsInvalidError("grc")
	}
	if arc < 0 {
		return errs.NewValueIsInvalidError("arc")
	}
	c.grc = grc
	c.arc = arc
	return nil
}

func (c *Conops) setAirRisks(inputs []AirRiskInput) error {
	risks := make([]AirRisk, 0, len(inputs))
	for _, in := range inputs {
		risk, err := NewAirRisk(in.Name, in.RiskType)
		if err != nil {
			return err
		}
		risks = append(risks, risk)
	}
	c.airRisks = risks
	return nil
}
