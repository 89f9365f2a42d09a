package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/conops"
	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
)

// GetFlightQueryHandler retrieves a single flight record from the database,
// including its air-risk copies, checkpoints and risk events.
type GetFlightQueryHandler struct {
	db *gorm.DB
}

// NewGetFlightQueryHandler creates a handler for single-flight queries.
func NewGetFlightQueryHandler(db *gorm.DB) GetFlightQueryHandler {
	return GetFlightQueryHandler{db: db}
}

// Handle executes the query. An unknown handle is ErrObjectNotFound.
func (h GetFlightQueryHandler) Handle(
	ctx context.Context,
	query GetFlightQuery,
) (FlightResponse, error) {
	if err := query.Validate(); err != nil {
		return FlightResponse{}, err
	}
	if err := requireAnyRole(ctx, h.db, query.Caller(), access.KnownRoles()); err != nil {
		return FlightResponse{}, err
	}

	var record FlightResponse
	var handle uuid.UUID
	var pilotStatus, droneStatus int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			handle,
			delivery_id,
			conops_id,
			pilot_principal,
			drone_principal,
			initialized,
			scheduled_at,
			duration_minutes,
			depart,
			destination,
			pilot_index,
			pilot_name,
			drone_index,
			drone_ref,
			drone_type,
			pilot_status,
			drone_status,
			pre_engine,
			pre_battery,
			pre_telecom,
			post_engine,
			post_battery,
			post_telecom,
			parcel_picked_up,
			parcel_delivered
		FROM flights
		WHERE handle = ?
	`, query.FlightHandle().Bytes()).Row()

	err := row.Scan(
		&handle,
		&record.DeliveryID,
		&record.ConopsID,
		&record.PilotPrincipal,
		&record.DronePrincipal,
		&record.Initialized,
		&record.ScheduledAt,
		&record.DurationMinutes,
		&record.Depart,
		&record.Destination,
		&record.PilotIndex,
		&record.PilotName,
		&record.DroneIndex,
		&record.DroneID,
		&record.DroneType,
		&pilotStatus,
		&droneStatus,
		&record.PreflightChecks.Engine,
		&record.PreflightChecks.Battery,
		&record.PreflightChecks.Telecom,
		&record.PostflightChecks.Engine,
		&record.PostflightChecks.Battery,
		&record.PostflightChecks.Telecom,
		&record.ParcelPickedUp,
		&record.ParcelDelivered,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return FlightResponse{}, errs.NewObjectNotFoundError("flightHandle", query.FlightHandle().String())
	}
	if err != nil {
		return FlightResponse{}, err
	}

	if record.Handle, err = kernel.UUIDFromBytes(handle[:]); err != nil {
		return FlightResponse{}, err
	}
	record.PilotStatus = flight.Status(pilotStatus).String()
	record.DroneStatus = flight.Status(droneStatus).String()

	if record.AirRisks, err = h.airRisks(ctx, query.FlightHandle()); err != nil {
		return FlightResponse{}, err
	}
	if record.Checkpoints, err = h.checkpoints(ctx, query.FlightHandle()); err != nil {
		return FlightResponse{}, err
	}
	if record.RiskEvents, err = h.riskEvents(ctx, query.FlightHandle()); err != nil {
		return FlightResponse{}, err
	}

	return record, nil
}

func (h GetFlightQueryHandler) airRisks(ctx context.Context, handle kernel.UUID) ([]AirRiskResponse, error) {
	risks := make([]AirRiskResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			risk_type,
			validated
		FROM flight_air_risks
		WHERE flight_handle = ?
		ORDER BY position
	`, handle.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var risk AirRiskResponse
		var riskType int

		if err = rows.Scan(&risk.Name, &riskType, &risk.Validated); err != nil {
			return nil, err
		}
		risk.RiskType = conops.RiskType(riskType).String()
		risks = append(risks, risk)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return risks, nil
}

func (h GetFlightQueryHandler) checkpoints(ctx context.Context, handle kernel.UUID) ([]CheckpointResponse, error) {
	checkpoints := make([]CheckpointResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			at,
			latitude,
			longitude
		FROM flight_checkpoints
		WHERE flight_handle = ?
		ORDER BY position
	`, handle.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var checkpoint CheckpointResponse
		if err = rows.Scan(&checkpoint.At, &checkpoint.Latitude, &checkpoint.Longitude); err != nil {
			return nil, err
		}
		checkpoints = append(checkpoints, checkpoint)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return checkpoints, nil
}

func (h GetFlightQueryHandler) riskEvents(ctx context.Context, handle kernel.UUID) ([]RiskEventResponse, error) {
	events := make([]RiskEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			at,
			risk
		FROM flight_risk_events
		WHERE flight_handle = ?
		ORDER BY position
	`, handle.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event RiskEventResponse
		var risk int

		if err = rows.Scan(&event.At, &risk); err != nil {
			return nil, err
		}
		event.Risk = flight.Risk(risk).String()
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
