package crew

import "starwings/internal/core/domain/model/kernel"

// PilotAdded is recorded when a pilot joins the roster, including when a
// deleted slot is reinstated.
type PilotAdded struct {
	Principal kernel.Principal
	Index     int
	Name      string
}

func (PilotAdded) EventName() string { return "crew.pilot_added" }

// PilotDeleted is recorded when a pilot is soft-deleted.
type PilotDeleted struct {
	Principal kernel.Principal
	Index     int
}

func (PilotDeleted) EventName() string { return "crew.pilot_deleted" }

// DroneAdded is recorded when a drone joins the roster, including when a
// deleted slot is reinstated.
type DroneAdded struct {
	Principal kernel.Principal
	Index     int
	DroneID   string
}

func (DroneAdded) EventName() string { return "crew.drone_added" }

// DroneDeleted is recorded when a drone is soft-deleted.
type DroneDeleted struct {
	Principal kernel.Principal
	Index     int
}

func (DroneDeleted) EventName() string { return "crew.drone_deleted" }
