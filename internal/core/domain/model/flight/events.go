package flight

import (
	"time"

	"starwings/internal/core/domain/model/kernel"
)

// Deployed is recorded when a flight record is allocated under its handle.
type Deployed struct {
	Handle kernel.UUID
}

func (Deployed) EventName() string { return "flight.deployed" }

// PilotStatusChanged is recorded when the pilot's tracker moves.
type PilotStatusChanged struct {
	Handle    kernel.UUID
	OldStatus Status
	NewStatus Status
}

func (PilotStatusChanged) EventName() string { return "flight.pilot_status_changed" }

// DroneStatusChanged is recorded when the drone's tracker moves.
type DroneStatusChanged struct {
	Handle    kernel.UUID
	OldStatus Status
	NewStatus Status
}

func (DroneStatusChanged) EventName() string { return "flight.drone_status_changed" }

// ParcelPickedUp is recorded when the drone takes custody of the parcel.
type ParcelPickedUp struct {
	Handle     kernel.UUID
	DeliveryID string
}

func (ParcelPickedUp) EventName() string { return "flight.parcel_picked_up" }

// ParcelDelivered is recorded when the parcel reaches the recipient.
type ParcelDelivered struct {
	Handle     kernel.UUID
	DeliveryID string
}

func (ParcelDelivered) EventName() string { return "flight.parcel_delivered" }

// CheckpointAdded is recorded for every position report.
type CheckpointAdded struct {
	Handle    kernel.UUID
	At        time.Time
	Latitude  float64
	Longitude float64
}

func (CheckpointAdded) EventName() string { return "flight.checkpoint_added" }
