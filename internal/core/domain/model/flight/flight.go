package flight

import (
	"errors"
	"time"

	"starwings/internal/core/domain/model/conops"
	"starwings/internal/core/domain/model/crew"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

// ErrFlightIsNotConstructed is returned when a Flight instance was not created
// through AllocateFlight or RestoreFlight.
var ErrFlightIsNotConstructed = errors.New("Flight must be created via AllocateFlight or RestoreFlight")

// FlightData is the operational plan supplied at initialization.
type FlightData struct {
	ScheduledAt     time.Time
	DurationMinutes int
	Depart          string
	Destination     string
}

// Flight is the record of one drone flight serving one delivery.
//
// A flight is created in two phases. Allocation reserves a deterministic
// handle and binds the flight to a delivery, a CONOPS and a crew; the record
// is otherwise empty. Initialization, exactly once, fixes the operational
// plan and freezes point-in-time copies of the crew entries and the CONOPS
// air-risk list. Later edits to the directory or the CONOPS never change an
// initialized flight.
//
// From there the pilot and the drone drive two independent status trackers
// through the same lifecycle. A tracker only moves forward, and entering
// Flying is gated: every embedded air risk must have been validated, and the
// pilot additionally needs the full preflight checklist.
type Flight struct {
	kernel.EventRecorder

	handle         kernel.UUID
	deliveryID     string
	conopsID       int
	pilotPrincipal kernel.Principal
	dronePrincipal kernel.Principal

	initialized bool
	data        FlightData
	pilot       crew.PilotSnapshot
	drone       crew.DroneSnapshot

	pilotStatus Status
	droneStatus Status

	airRisks         []conops.AirRisk
	preflightChecks  Checklist
	postflightChecks Checklist

	parcelPickedUp  bool
	parcelDelivered bool

	checkpoints []Checkpoint
	riskEvents  []RiskEvent

	guard guard.ConstructorGuard
}

// AllocateFlight reserves a flight record under a precomputed handle and
// records the Deployed event. The flight stays pending until Initialize; the
// crew principals are bound here so the pending record already knows who may
// drive it.
func AllocateFlight(handle kernel.UUID, deliveryID string, conopsID int, pilotPrincipal, dronePrincipal kernel.Principal) (*Flight, error) {
	f := &Flight{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setHandle(handle),
		f.setDeliveryID(deliveryID),
		f.setConopsID(conopsID),
		f.setPrincipals(pilotPrincipal, dronePrincipal),
	); err != nil {
		return nil, err
	}

	f.Record(Deployed{Handle: handle})
	return f, nil
}

// Initialize fixes the operational plan and freezes the crew and air-risk
// copies. A flight initializes exactly once; a second call is
// PreconditionFailed. The embedded air risks always start unvalidated,
// whatever their state in the source CONOPS.
func (f *Flight) Initialize(
	data FlightData,
	pilot crew.PilotSnapshot,
	drone crew.DroneSnapshot,
	airRisks []conops.AirRisk,
) error {
	if f.initialized {
		return errs.NewPreconditionFailedError("flight already initialized")
	}
	if !pilot.Principal.IsEqual(f.pilotPrincipal) || !drone.Principal.IsEqual(f.dronePrincipal) {
		return errs.NewPreconditionFailedError("crew does not match allocation")
	}
	if err := errors.Join(
		f.setData(data),
		f.setPilot(pilot),
		f.setDrone(drone),
	); err != nil {
		return err
	}

	f.airRisks = make([]conops.AirRisk, 0, len(airRisks))
	for _, risk := range airRisks {
		f.airRisks = append(f.airRisks, risk.WithValidation(false))
	}
	f.initialized = true
	return nil
}

// RestoreFlight reconstructs a flight from persistence. Records no event.
func RestoreFlight(
	handle kernel.UUID, deliveryID string, conopsID int,
	pilotPrincipal, dronePrincipal kernel.Principal,
	initialized bool, data FlightData,
	pilot crew.PilotSnapshot, drone crew.DroneSnapshot,
	pilotStatus, droneStatus Status,
	airRisks []conops.AirRisk,
	preflightChecks, postflightChecks Checklist,
	parcelPickedUp, parcelDelivered bool,
	checkpoints []Checkpoint, riskEvents []RiskEvent,
) (*Flight, error) {
	f, err := AllocateFlight(handle, deliveryID, conopsID, pilotPrincipal, dronePrincipal)
	if err != nil {
		return nil, err
	}
	if err := errors.Join(pilotStatus.Validate(), droneStatus.Validate()); err != nil {
		return nil, err
	}

	f.initialized = initialized
	f.data = data
	f.pilot = pilot
	f.drone = drone
	f.pilotStatus = pilotStatus
	f.droneStatus = droneStatus
	f.airRisks = append([]conops.AirRisk(nil), airRisks...)
	f.preflightChecks = preflightChecks
	f.postflightChecks = postflightChecks
	f.parcelPickedUp = parcelPickedUp
	f.parcelDelivered = parcelDelivered
	f.checkpoints = append([]Checkpoint(nil), checkpoints...)
	f.riskEvents = append([]RiskEvent(nil), riskEvents...)
	f.DrainEvents()
	return f, nil
}

// Validate ensures the flight was built through a constructor.
func (f *Flight) Validate() error {
	if f == nil {
		return ErrFlightIsNotConstructed
	}
	return f.guard.Validate(ErrFlightIsNotConstructed)
}

// Handle returns the deterministic identifier of the flight.
func (f *Flight) Handle() kernel.UUID { return f.handle }

// DeliveryID returns the id of the delivery this flight serves.
func (f *Flight) DeliveryID() string { return f.deliveryID }

// ConopsID returns the id of the route dossier this flight operates under.
func (f *Flight) ConopsID() int { return f.conopsID }

// PilotPrincipal returns the identity of the pilot bound at allocation.
func (f *Flight) PilotPrincipal() kernel.Principal { return f.pilotPrincipal }

// DronePrincipal returns the identity of the drone bound at allocation.
func (f *Flight) DronePrincipal() kernel.Principal { return f.dronePrincipal }

// IsInitialized reports whether the operational plan has been fixed.
func (f *Flight) IsInitialized() bool { return f.initialized }

// Data returns the operational plan. Zero value until initialization.
func (f *Flight) Data() FlightData { return f.data }

// Pilot returns the crew snapshot frozen at initialization.
func (f *Flight) Pilot() crew.PilotSnapshot { return f.pilot }

// Drone returns the crew snapshot frozen at initialization.
func (f *Flight) Drone() crew.DroneSnapshot { return f.drone }

// PilotStatus returns the pilot's lifecycle tracker.
func (f *Flight) PilotStatus() Status { return f.pilotStatus }

// DroneStatus returns the drone's lifecycle tracker.
func (f *Flight) DroneStatus() Status { return f.droneStatus }

// ParcelPickedUp reports whether the drone has taken custody of the parcel.
func (f *Flight) ParcelPickedUp() bool { return f.parcelPickedUp }

// ParcelDelivered reports whether the parcel reached the recipient.
func (f *Flight) ParcelDelivered() bool { return f.parcelDelivered }

// AirRisks returns a copy of the embedded air-risk list.
func (f *Flight) AirRisks() []conops.AirRisk {
	return append([]conops.AirRisk(nil), f.airRisks...)
}

// Checkpoints returns a copy of the position track, in report order.
func (f *Flight) Checkpoints() []Checkpoint {
	return append([]Checkpoint(nil), f.checkpoints...)
}

// RiskEvents returns a copy of the incident log, in report order.
func (f *Flight) RiskEvents() []RiskEvent {
	return append([]RiskEvent(nil), f.riskEvents...)
}

// RiskEvent returns one entry of the incident log.
func (f *Flight) RiskEvent(i int) (RiskEvent, error) {
	if i < 0 || i >= len(f.riskEvents) {
		return RiskEvent{}, errs.NewObjectNotFoundError("riskEventId", i)
	}
	return f.riskEvents[i], nil
}

// PreFlightCheck reports completion of one preflight checklist item.
func (f *Flight) PreFlightCheck(id Check) (bool, error) {
	return f.preflightChecks.IsComplete(id)
}

// PostFlightCheck reports completion of one postflight checklist item.
func (f *Flight) PostFlightCheck(id Check) (bool, error) {
	return f.postflightChecks.IsComplete(id)
}

// PreFlightChecks returns the whole preflight checklist.
func (f *Flight) PreFlightChecks() Checklist { return f.preflightChecks }

// PostFlightChecks returns the whole postflight checklist.
func (f *Flight) PostFlightChecks() Checklist { return f.postflightChecks }

// ChangePilotStatus advances the pilot's tracker to newStatus.
func (f *Flight) ChangePilotStatus(newStatus Status) error {
	if err := f.requireInitialized(); err != nil {
		return err
	}
	if err := f.validateTransition(f.pilotStatus, newStatus, true); err != nil {
		return err
	}
	old := f.pilotStatus
	f.pilotStatus = newStatus
	f.Record(PilotStatusChanged{Handle: f.handle, OldStatus: old, NewStatus: newStatus})
	return nil
}

// ChangeDroneStatus advances the drone's tracker to newStatus. Unlike the
// pilot, the drone's entry into Flying needs only the air risks validated.
func (f *Flight) ChangeDroneStatus(newStatus Status) error {
	if err := f.requireInitialized(); err != nil {
		return err
	}
	if err := f.validateTransition(f.droneStatus, newStatus, false); err != nil {
		return err
	}
	old := f.droneStatus
	f.droneStatus = newStatus
	f.Record(DroneStatusChanged{Handle: f.handle, OldStatus: old, NewStatus: newStatus})
	return nil
}

// CancelByPilot abandons the flight before departure, setting the pilot's
// tracker to Canceled directly. This is the only way into Canceled.
func (f *Flight) CancelByPilot() error {
	if err := f.requireInitialized(); err != nil {
		return err
	}
	old := f.pilotStatus
	f.pilotStatus = StatusCanceled
	f.Record(PilotStatusChanged{Handle: f.handle, OldStatus: old, NewStatus: StatusCanceled})
	return nil
}

// CompletePreFlightCheck marks one preflight checklist item done.
func (f *Flight) CompletePreFlightCheck(id Check) error {
	if err := f.requireInitialized(); err != nil {
		return err
	}
	return f.preflightChecks.Complete(id)
}

// CompletePostFlightCheck marks one postflight checklist item done.
func (f *Flight) CompletePostFlightCheck(id Check) error {
	if err := f.requireInitialized(); err != nil {
		return err
	}
	return f.postflightChecks.Complete(id)
}

// ValidateAirRisk marks one embedded air risk as cleared by the pilot.
func (f *Flight) ValidateAirRisk(id int) error {
	return f.setAirRiskValidation(id, true)
}

// CancelAirRisk withdraws a previous clearance.
func (f *Flight) CancelAirRisk(id int) error {
	return f.setAirRiskValidation(id, false)
}

// PickUpParcel records that the drone took custody of the parcel.
func (f *Flight) PickUpParcel() error {
	if err := f.requireInitialized(); err != nil {
		return err
	}
	if f.parcelPickedUp {
		return errs.NewPreconditionFailedError("parcel already picked up")
	}
	f.parcelPickedUp = true
	f.Record(ParcelPickedUp{Handle: f.handle, DeliveryID: f.deliveryID})
	return nil
}

// DeliverParcel records that the parcel reached the recipient. Requires a
// prior pickup.
func (f *Flight) DeliverParcel() error {
	if err := f.requireInitialized(); err != nil {
		return err
	}
	if !f.parcelPickedUp {
		return errs.NewPreconditionFailedError("parcel not picked up before")
	}
	f.parcelDelivered = true
	f.Record(ParcelDelivered{Handle: f.handle, DeliveryID: f.deliveryID})
	return nil
}

// AddCheckpoint appends a position report to the track.
func (f *Flight) AddCheckpoint(at time.Time, latitude, longitude float64) error {
	if err := f.requireInitialized(); err != nil {
		return err
	}
	checkpoint := Checkpoint{At: at, Latitude: latitude, Longitude: longitude}
	f.checkpoints = append(f.checkpoints, checkpoint)
	f.Record(CheckpointAdded{
		Handle:    f.handle,
		At:        at,
		Latitude:  latitude,
		Longitude: longitude,
	})
	return nil
}

// AddRiskEvent appends an incident to the log.
func (f *Flight) AddRiskEvent(at time.Time, risk Risk) error {
	if err := f.requireInitialized(); err != nil {
		return err
	}
	if err := risk.Validate(); err != nil {
		return err
	}
	f.riskEvents = append(f.riskEvents, RiskEvent{At: at, Risk: risk})
	return nil
}

// validateTransition is the shared gate for both trackers. Checks apply in
// order: Canceled is reserved for CancelByPilot, the target must be a known
// status, the tracker only moves forward, and Flying requires clearance.
func (f *Flight) validateTransition(current, newStatus Status, requirePreflight bool) error {
	switch {
	case newStatus == StatusCanceled:
		return errs.NewInvalidTransitionError("cannot cancel flight this way")
	case newStatus < StatusPreFlight || newStatus > StatusEnded:
		return errs.NewInvalidTransitionError("not a valid status")
	case newStatus <= current:
		return errs.NewInvalidTransitionError("status not allowed")
	case newStatus == StatusFlying && !f.clearedForTakeoff(requirePreflight):
		return errs.NewInvalidTransitionError("flying is not allowed")
	}
	return nil
}

func (f *Flight) clearedForTakeoff(requirePreflight bool) bool {
	for _, risk := range f.airRisks {
		if !risk.Validated() {
			return false
		}
	}
	if requirePreflight && !f.preflightChecks.AllComplete() {
		return false
	}
	return true
}

func (f *Flight) setAirRiskValidation(id int, validated bool) error {
	if err := f.requireInitialized(); err != nil {
		return err
	}
	if id < 0 || id >= len(f.airRisks) {
		return errs.NewObjectNotFoundError("airRiskId", id)
	}
	f.airRisks[id] = f.airRisks[id].WithValidation(validated)
	return nil
}

func (f *Flight) requireInitialized() error {
	if !f.initialized {
		return errs.NewPreconditionFailedError("flight not initialized")
	}
	return nil
}

func (f *Flight) setHandle(handle kernel.UUID) error {
	if err := handle.Validate(); err != nil {
		return err
	}
	f.handle = handle
	return nil
}

func (f *Flight) setDeliveryID(deliveryID string) error {
	if deliveryID == "" {
		return errs.NewValueIsRequiredError("delivery id")
	}
	f.deliveryID = deliveryID
	return nil
}

func (f *Flight) setConopsID(conopsID int) error {
	if conopsID <= 0 {
		return errs.NewValueIsInvalidError("conops id")
	}
	f.conopsID = conopsID
	return nil
}

func (f *Flight) setPrincipals(pilotPrincipal, dronePrincipal kernel.Principal) error {
	if err := errors.Join(pilotPrincipal.Validate(), dronePrincipal.Validate()); err != nil {
		return err
	}
	f.pilotPrincipal = pilotPrincipal
	f.dronePrincipal = dronePrincipal
	return nil
}

func (f *Flight) setData(data FlightData) error {
	if data.ScheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduled time")
	}
	if data.DurationMinutes <= 0 {
		return errs.NewValueIsInvalidError("flight duration")
	}
	if data.Depart == "" {
		return errs.NewValueIsRequiredError("depart")
	}
	if data.Destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	f.data = data
	return nil
}

func (f *Flight) setPilot(pilot crew.PilotSnapshot) error {
	if err := pilot.Principal.Validate(); err != nil {
		return err
	}
	f.pilot = pilot
	return nil
}

func (f *Flight) setDrone(drone crew.DroneSnapshot) error {
	if err := drone.Principal.Validate(); err != nil {
		return err
	}
	f.drone = drone
	return nil
}
