package queries

import (
	"errors"
	"time"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrGetFlightQueryIsNotConstructed = errors.New(
	"GetFlightQuery must be created via NewGetFlightQuery constructor",
)

// GetFlightQuery retrieves one flight record by its handle. Open to any
// principal holding a known role.
type GetFlightQuery struct {
	caller kernel.Principal
	handle kernel.UUID
	guard  guard.ConstructorGuard
}

// NewGetFlightQuery creates a query for the flight with the given handle.
func NewGetFlightQuery(caller kernel.Principal, handle kernel.UUID) (GetFlightQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetFlightQuery{}, err
	}
	if err := handle.Validate(); err != nil {
		return GetFlightQuery{}, err
	}
	return GetFlightQuery{caller: caller, handle: handle, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFlightQuery) Validate() error {
	return q.guard.Validate(ErrGetFlightQueryIsNotConstructed)
}

// Caller returns the requesting principal.
func (q GetFlightQuery) Caller() kernel.Principal {
	return q.caller
}

// FlightHandle returns the requested handle.
func (q GetFlightQuery) FlightHandle() kernel.UUID {
	return q.handle
}

// ChecklistResponse is the state of one three-item flight checklist.
type ChecklistResponse struct {
	Engine  bool
	Battery bool
	Telecom bool
}

// CheckpointResponse is one recorded in-flight position.
type CheckpointResponse struct {
	At        time.Time
	Latitude  float64
	Longitude float64
}

// RiskEventResponse is one in-flight risk occurrence.
type RiskEventResponse struct {
	At   time.Time
	Risk string
}

// FlightResponse represents one flight record in the read model. The crew
// fields carry the point-in-time snapshots frozen at initialization; on a
// flight that is allocated but not yet initialized they are zero.
type FlightResponse struct {
	Handle           kernel.UUID
	DeliveryID       string
	ConopsID         int
	PilotPrincipal   string
	DronePrincipal   string
	Initialized      bool
	ScheduledAt      time.Time
	DurationMinutes  int
	Depart           string
	Destination      string
	PilotIndex       int
	PilotName        string
	DroneIndex       int
	DroneID          string
	DroneType        string
	PilotStatus      string
	DroneStatus      string
	PreflightChecks  ChecklistResponse
	PostflightChecks ChecklistResponse
	ParcelPickedUp   bool
	ParcelDelivered  bool
	AirRisks         []AirRiskResponse
	Checkpoints      []CheckpointResponse
	RiskEvents       []RiskEventResponse
}
