// Package crewrepo persists the pilot and drone rosters. Roster slots are
// soft-deleted: a deleted entry keeps its index and flight history so a
// returning crew member can be reinstated into the same slot.
package crewrepo

import (
	"github.com/google/uuid"

	"starwings/internal/core/domain/model/crew"
	"starwings/internal/core/domain/model/kernel"
)

// PilotDTO represents the database structure for persisting pilot slots.
type PilotDTO struct {
	SlotIndex int              `gorm:"primaryKey;autoIncrement:false"`
	Principal string           `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name      string           `gorm:"type:varchar(255);not null"`
	Deleted   bool             `gorm:"not null"`
	Flights   []PilotFlightDTO `gorm:"foreignKey:PilotIndex;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "pilots".
func (PilotDTO) TableName() string {
	return "pilots"
}

// PilotFlightDTO is one entry of a pilot's flight history, in allocation order.
type PilotFlightDTO struct {
	PilotIndex int       `gorm:"primaryKey;autoIncrement:false"`
	Position   int       `gorm:"primaryKey;autoIncrement:false"`
	Handle     uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName overrides GORM's default naming to use "pilot_flights".
func (PilotFlightDTO) TableName() string {
	return "pilot_flights"
}

// DroneDTO represents the database structure for persisting drone slots.
type DroneDTO struct {
	SlotIndex int              `gorm:"primaryKey;autoIncrement:false"`
	Principal string           `gorm:"type:varchar(255);not null;uniqueIndex"`
	DroneID   string           `gorm:"type:varchar(255);not null"`
	DroneType string           `gorm:"type:varchar(255);not null"`
	Deleted   bool             `gorm:"not null"`
	Flights   []DroneFlightDTO `gorm:"foreignKey:DroneIndex;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "drones".
func (DroneDTO) TableName() string {
	return "drones"
}

// DroneFlightDTO is one entry of a drone's flight history, in allocation order.
type DroneFlightDTO struct {
	DroneIndex int       `gorm:"primaryKey;autoIncrement:false"`
	Position   int       `gorm:"primaryKey;autoIncrement:false"`
	Handle     uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName overrides GORM's default naming to use "drone_flights".
func (DroneFlightDTO) TableName() string {
	return "drone_flights"
}

// pilotFromDomain converts a pilot entry to its database representation.
func pilotFromDomain(pilot *crew.Pilot) PilotDTO {
	handles := pilot.FlightHandles()
	flights := make([]PilotFlightDTO, 0, len(handles))
	for i, handle := range handles {
		flights = append(flights, PilotFlightDTO{
			PilotIndex: pilot.Index(),
			Position:   i,
			Handle:     handle.Bytes(),
		})
	}

	return PilotDTO{
		SlotIndex: pilot.Index(),
		Principal: pilot.Principal().String(),
		Name:      pilot.Name(),
		Deleted:   pilot.IsDeleted(),
		Flights:   flights,
	}
}

// pilotToDomain converts a database DTO to a pilot entry.
func pilotToDomain(dto PilotDTO) (*crew.Pilot, error) {
	principal, err := kernel.NewPrincipal(dto.Principal)
	if err != nil {
		return nil, err
	}

	handles, err := flightHandles(dto.Flights, func(f PilotFlightDTO) uuid.UUID { return f.Handle })
	if err != nil {
		return nil, err
	}

	return crew.RestorePilot(dto.SlotIndex, principal, dto.Name, dto.Deleted, handles)
}

// droneFromDomain converts a drone entry to its database representation.
func droneFromDomain(drone *crew.Drone) DroneDTO {
	handles := drone.FlightHandles()
	flights := make([]DroneFlightDTO, 0, len(handles))
	for i, handle := range handles {
		flights = append(flights, DroneFlightDTO{
			DroneIndex: drone.Index(),
			Position:   i,
			Handle:     handle.Bytes(),
		})
	}

	return DroneDTO{
		SlotIndex: drone.Index(),
		Principal: drone.Principal().String(),
		DroneID:   drone.DroneID(),
		DroneType: drone.DroneType(),
		Deleted:   drone.IsDeleted(),
		Flights:   flights,
	}
}

// droneToDomain converts a database DTO to a drone entry.
func droneToDomain(dto DroneDTO) (*crew.Drone, error) {
	principal, err := kernel.NewPrincipal(dto.Principal)
	if err != nil {
		return nil, err
	}

	handles, err := flightHandles(dto.Flights, func(f DroneFlightDTO) uuid.UUID { return f.Handle })
	if err != nil {
		return nil, err
	}

	return crew.RestoreDrone(dto.SlotIndex, principal, dto.DroneID, dto.DroneType, dto.Deleted, handles)
}

func flightHandles[T any](flights []T, handleOf func(T) uuid.UUID) ([]kernel.UUID, error) {
	handles := make([]kernel.UUID, 0, len(flights))
	for _, flight := range flights {
		raw := handleOf(flight)
		handle, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		handles = append(handles, handle)
	}
	return handles, nil
}
