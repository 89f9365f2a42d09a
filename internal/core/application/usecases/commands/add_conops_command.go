package commands

import (
	"errors"

	"starwings/internal/core/domain/model/conops"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

var ErrAddConopsCommandIsNotConstructed = errors.New(
	"AddConopsCommand must be created via NewAddConopsCommand constructor",
)

// AddConopsCommand represents a request to register a new route dossier.
// Admin-gated. The dossier id is assigned by the handler from the registry
// sequence; the command carries everything else.
//
// Example:
//
//	cmd, err := NewAddConopsCommand(admin, "test1",
//	    "Hub Paris 13", "Hopital Pitie-Salpetriere",
//	    "Pont d'Austerlitz", "Gare de Lyon",
//	    []conops.AirRiskInput{{Name: "CHU A", RiskType: conops.CHU}},
//	    1, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid dossier: %w", err)
//	}
//
//	handler := NewAddConopsCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register dossier: %w", err)
//	}
//	fmt.Printf("Registered CONOPS %d", cmd.ConopsID())
type AddConopsCommand struct { //nolint:recvcheck //using for validation
	caller        kernel.Principal
	name          string
	startingPoint string
	endPoint      string
	crossRoad     string
	exclusionZone string
	airRisks      []conops.AirRiskInput
	grc           int
	arc           int

	conopsID int

	guard guard.ConstructorGuard
}

// NewAddConopsCommand creates a command to register a route dossier.
func NewAddConopsCommand(
	caller kernel.Principal,
	name, startingPoint, endPoint, crossRoad, exclusionZone string,
	airRisks []conops.AirRiskInput,
	grc, arc int,
) (AddConopsCommand, error) {
	command := AddConopsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setName(name),
		command.setRoute(startingPoint, endPoint, crossRoad, exclusionZone),
		command.setAirRisks(airRisks),
		command.setRiskClasses(grc, arc),
	); err != nil {
		return AddConopsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddConopsCommand) Validate() error {
	return c.guard.Validate(ErrAddConopsCommandIsNotConstructed)
}

// Caller returns the principal registering the dossier.
func (c AddConopsCommand) Caller() kernel.Principal {
	return c.caller
}

// Name returns the dossier name.
func (c AddConopsCommand) Name() string {
	return c.name
}

// StartingPoint returns the route's departure description.
func (c AddConopsCommand) StartingPoint() string {
	return c.startingPoint
}

// EndPoint returns the route's arrival description.
func (c AddConopsCommand) EndPoint() string {
	return c.endPoint
}

// CrossRoad returns the route's emergency landing point.
func (c AddConopsCommand) CrossRoad() string {
	return c.crossRoad
}

// ExclusionZone returns the airspace to stay clear of.
func (c AddConopsCommand) ExclusionZone() string {
	return c.exclusionZone
}

// AirRisks returns the hazards to embed in the dossier.
func (c AddConopsCommand) AirRisks() []conops.AirRiskInput {
	return append([]conops.AirRiskInput(nil), c.airRisks...)
}

// GRC returns the ground risk class.
func (c AddConopsCommand) GRC() int {
	return c.grc
}

// ARC returns the air risk class.
func (c AddConopsCommand) ARC() int {
	return c.arc
}

// ConopsID returns the id assigned during handling. Zero until handled.
func (c AddConopsCommand) ConopsID() int {
	return c.conopsID
}

func (c *AddConopsCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *AddConopsCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddConopsCommand) setRoute(startingPoint, endPoint, crossRoad, exclusionZone string) error {
	if startingPoint == "" {
		return errs.NewValueIsRequiredError("starting point")
	}
	if endPoint == "" {
		return errs.NewValueIsRequiredError("end point")
	}

	c.startingPoint = startingPoint
	c.endPoint = endPoint
	c.crossRoad = crossRoad
	c.exclusionZone = exclusionZone
	return nil
}

func (c *AddConopsCommand) setAirRisks(airRisks []conops.AirRiskInput) error {
	for _, risk := range airRisks {
		if risk.Name == "" {
			return errs.NewValueIsRequiredError("air risk name")
		}
		if err := risk.RiskType.Validate(); err != nil {
			return err
		}
	}

	c.airRisks = append([]conops.AirRiskInput(nil), airRisks...)
	return nil
}

func (c *AddConopsCommand) setRiskClasses(grc, arc int) error {
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
