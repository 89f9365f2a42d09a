// Package flightrepo persists flight records: the allocation row, the frozen
// crew snapshots and plan, the per-flight air-risk copies, the checkpoint
// track and the incident log.
package flightrepo

import (
	"time"

	"github.com/google/uuid"

	"starwings/internal/core/domain/model/conops"
	"starwings/internal/core/domain/model/crew"
	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"
)

// FlightDTO represents the database structure for persisting flights. On a
// flight that is allocated but not initialized the plan and snapshot columns
// hold zero values.
type FlightDTO struct {
	Handle          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AllocatedAt     time.Time `gorm:"autoCreateTime"`
	DeliveryID      string    `gorm:"type:varchar(64);not null;index"`
	ConopsID        int       `gorm:"type:int;not null"`
	PilotPrincipal  string    `gorm:"type:varchar(255);not null"`
	DronePrincipal  string    `gorm:"type:varchar(255);not null"`
	Initialized     bool      `gorm:"not null"`
	ScheduledAt     time.Time
	DurationMinutes int    `gorm:"type:int;not null"`
	Depart          string `gorm:"type:varchar(255);not null"`
	Destination     string `gorm:"type:varchar(255);not null"`
	PilotIndex      int    `gorm:"type:int;not null"`
	PilotName       string `gorm:"type:varchar(255);not null"`
	DroneIndex      int    `gorm:"type:int;not null"`
	DroneRef        string `gorm:"type:varchar(255);not null"`
	DroneType       string `gorm:"type:varchar(255);not null"`
	PilotStatus     int    `gorm:"type:smallint;not null"`
	DroneStatus     int    `gorm:"type:smallint;not null"`
	PreEngine       bool   `gorm:"not null"`
	PreBattery      bool   `gorm:"not null"`
	PreTelecom      bool   `gorm:"not null"`
	PostEngine      bool   `gorm:"not null"`
	PostBattery     bool   `gorm:"not null"`
	PostTelecom     bool   `gorm:"not null"`
	ParcelPickedUp  bool   `gorm:"not null"`
	ParcelDelivered bool   `gorm:"not null"`

	AirRisks    []FlightAirRiskDTO    `gorm:"foreignKey:FlightHandle;constraint:OnDelete:CASCADE"`
	Checkpoints []FlightCheckpointDTO `gorm:"foreignKey:FlightHandle;constraint:OnDelete:CASCADE"`
	RiskEvents  []FlightRiskEventDTO  `gorm:"foreignKey:FlightHandle;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "flights".
func (FlightDTO) TableName() string {
	return "flights"
}

// FlightAirRiskDTO is one per-flight air-risk copy with its validation mark.
type FlightAirRiskDTO struct {
	FlightHandle uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"primaryKey;autoIncrement:false"`
	Name         string    `gorm:"type:varchar(255);not null"`
	RiskType     int       `gorm:"type:smallint;not null"`
	Validated    bool      `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "flight_air_risks".
func (FlightAirRiskDTO) TableName() string {
	return "flight_air_risks"
}

// FlightCheckpointDTO is one recorded in-flight position.
type FlightCheckpointDTO struct {
	FlightHandle uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"primaryKey;autoIncrement:false"`
	At           time.Time `gorm:"not null"`
	Latitude     float64   `gorm:"not null"`
	Longitude    float64   `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "flight_checkpoints".
func (FlightCheckpointDTO) TableName() string {
	return "flight_checkpoints"
}

// FlightRiskEventDTO is one in-flight risk occurrence.
type FlightRiskEventDTO struct {
	FlightHandle uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"primaryKey;autoIncrement:false"`
	At           time.Time `gorm:"not null"`
	Risk         int       `gorm:"type:smallint;not null"`
}

// TableName overrides GORM's default naming to use "flight_risk_events".
func (FlightRiskEventDTO) TableName() string {
	return "flight_risk_events"
}

// fromDomain converts a flight aggregate to its database representation.
func fromDomain(aggregate *flight.Flight) FlightDTO {
	handle := aggregate.Handle().Bytes()

	domainRisks := aggregate.AirRisks()
	risks := make([]FlightAirRiskDTO, 0, len(domainRisks))
	for i, risk := range domainRisks {
		risks = append(risks, FlightAirRiskDTO{
			FlightHandle: handle,
			Position:     i,
			Name:         risk.Name(),
			RiskType:     int(risk.RiskType()),
			Validated:    risk.Validated(),
		})
	}

	domainCheckpoints := aggregate.Checkpoints()
	checkpoints := make([]FlightCheckpointDTO, 0, len(domainCheckpoints))
	for i, checkpoint := range domainCheckpoints {
		checkpoints = append(checkpoints, FlightCheckpointDTO{
			FlightHandle: handle,
			Position:     i,
			At:           checkpoint.At,
			Latitude:     checkpoint.Latitude,
			Longitude:    checkpoint.Longitude,
		})
	}

	domainEvents := aggregate.RiskEvents()
	riskEvents := make([]FlightRiskEventDTO, 0, len(domainEvents))
	for i, event := range domainEvents {
		riskEvents = append(riskEvents, FlightRiskEventDTO{
			FlightHandle: handle,
			Position:     i,
			At:           event.At,
			Risk:         int(event.Risk),
		})
	}

	data := aggregate.Data()
	pre := aggregate.PreFlightChecks()
	post := aggregate.PostFlightChecks()

	return FlightDTO{
		Handle:          handle,
		DeliveryID:      aggregate.DeliveryID(),
		ConopsID:        aggregate.ConopsID(),
		PilotPrincipal:  aggregate.PilotPrincipal().String(),
		DronePrincipal:  aggregate.DronePrincipal().String(),
		Initialized:     aggregate.IsInitialized(),
		ScheduledAt:     data.ScheduledAt,
		DurationMinutes: data.DurationMinutes,
		Depart:          data.Depart,
		Destination:     data.Destination,
		PilotIndex:      aggregate.Pilot().Index,
		PilotName:       aggregate.Pilot().Name,
		DroneIndex:      aggregate.Drone().Index,
		DroneRef:        aggregate.Drone().DroneID,
		DroneType:       aggregate.Drone().DroneType,
		PilotStatus:     int(aggregate.PilotStatus()),
		DroneStatus:     int(aggregate.DroneStatus()),
		PreEngine:       pre[flight.CheckEngine],
		PreBattery:      pre[flight.CheckBattery],
		PreTelecom:      pre[flight.CheckTelecom],
		PostEngine:      post[flight.CheckEngine],
		PostBattery:     post[flight.CheckBattery],
		PostTelecom:     post[flight.CheckTelecom],
		ParcelPickedUp:  aggregate.ParcelPickedUp(),
		ParcelDelivered: aggregate.ParcelDelivered(),
		AirRisks:        risks,
		Checkpoints:     checkpoints,
		RiskEvents:      riskEvents,
	}
}

// toDomain converts a database DTO to a flight aggregate.
func toDomain(dto FlightDTO) (*flight.Flight, error) {
	handle, err := kernel.UUIDFromBytes(dto.Handle[:])
	if err != nil {
		return nil, err
	}
	pilotPrincipal, err := kernel.NewPrincipal(dto.PilotPrincipal)
	if err != nil {
		return nil, err
	}
	dronePrincipal, err := kernel.NewPrincipal(dto.DronePrincipal)
	if err != nil {
		return nil, err
	}

	risks := make([]conops.AirRisk, 0, len(dto.AirRisks))
	for _, riskDTO := range dto.AirRisks {
		risk, riskErr := conops.RestoreAirRisk(riskDTO.Name, conops.RiskType(riskDTO.RiskType), riskDTO.Validated)
		if riskErr != nil {
			return nil, riskErr
		}
		risks = append(risks, risk)
	}

	checkpoints := make([]flight.Checkpoint, 0, len(dto.Checkpoints))
	for _, checkpointDTO := range dto.Checkpoints {
		checkpoints = append(checkpoints, flight.Checkpoint{
			At:        checkpointDTO.At,
			Latitude:  checkpointDTO.Latitude,
			Longitude: checkpointDTO.Longitude,
		})
	}

	riskEvents := make([]flight.RiskEvent, 0, len(dto.RiskEvents))
	for _, eventDTO := range dto.RiskEvents {
		riskEvents = append(riskEvents, flight.RiskEvent{
			At:   eventDTO.At,
			Risk: flight.Risk(eventDTO.Risk),
		})
	}

	var pilotSnapshot crew.PilotSnapshot
	var droneSnapshot crew.DroneSnapshot
	if dto.Initialized {
		pilotSnapshot = crew.PilotSnapshot{
			Index:     dto.PilotIndex,
			Name:      dto.PilotName,
			Principal: pilotPrincipal,
		}
		droneSnapshot = crew.DroneSnapshot{
			Index:     dto.DroneIndex,
			DroneID:   dto.DroneRef,
			DroneType: dto.DroneType,
			Principal: dronePrincipal,
		}
	}

	return flight.RestoreFlight(
		handle, dto.DeliveryID, dto.ConopsID,
		pilotPrincipal, dronePrincipal,
		dto.Initialized,
		flight.FlightData{
			ScheduledAt:     dto.ScheduledAt,
			DurationMinutes: dto.DurationMinutes,
			Depart:          dto.Depart,
			Destination:     dto.Destination,
		},
		pilotSnapshot, droneSnapshot,
		flight.Status(dto.PilotStatus), flight.Status(dto.DroneStatus),
		risks,
		flight.Checklist{dto.PreEngine, dto.PreBattery, dto.PreTelecom},
		flight.Checklist{dto.PostEngine, dto.PostBattery, dto.PostTelecom},
		dto.ParcelPickedUp, dto.ParcelDelivered,
		checkpoints, riskEvents,
	)
}
