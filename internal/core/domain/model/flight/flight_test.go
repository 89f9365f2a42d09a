package flight_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwings/internal/core/domain/model/conops"
	"starwings/internal/core/domain/model/crew"
	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
)

func sampleData() flight.FlightData {
	return flight.FlightData{
		ScheduledAt:     time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC),
		DurationMinutes: 15,
		Depart:          "Hub Paris 13",
		Destination:     "Hopital Pitie-Salpetriere",
	}
}

func sampleCrew(t *testing.T) (crew.PilotSnapshot, crew.DroneSnapshot) {
	t.Helper()
	pilotPrincipal, err := kernel.NewPrincipal("0xpilot1")
	require.NoError(t, err)
	dronePrincipal, err := kernel.NewPrincipal("0xdrone1")
	require.NoError(t, err)

	pilot := crew.PilotSnapshot{Index: 0, Name: "John Pilot", Principal: pilotPrincipal}
	drone := crew.DroneSnapshot{Index: 0, DroneID: "UAS-FR-001", DroneType: "DJI M300", Principal: dronePrincipal}
	return pilot, drone
}

func sampleAirRisks(t *testing.T) []conops.AirRisk {
	t.Helper()
	chu, err := conops.NewAirRisk("CHU A", conops.CHU)
	require.NoError(t, err)
	base, err := conops.NewAirRisk("BASE B", conops.MilitaryBase)
	require.NoError(t, err)
	return []conops.AirRisk{chu, base}
}

func initializedFlight(t *testing.T) *flight.Flight {
	t.Helper()
	pilot, drone := sampleCrew(t)
	f, err := flight.AllocateFlight(kernel.NewUUID(), "delivery-1", 1, pilot.Principal, drone.Principal)
	require.NoError(t, err)
	f.DrainEvents()

	require.NoError(t, f.Initialize(sampleData(), pilot, drone, sampleAirRisks(t)))
	return f
}

func clearAirRisks(t *testing.T, f *flight.Flight) {
	t.Helper()
	for i := range f.AirRisks() {
		require.NoError(t, f.ValidateAirRisk(i))
	}
}

func completePreFlight(t *testing.T, f *flight.Flight) {
	t.Helper()
	require.NoError(t, f.CompletePreFlightCheck(flight.CheckEngine))
	require.NoError(t, f.CompletePreFlightCheck(flight.CheckBattery))
	require.NoError(t, f.CompletePreFlightCheck(flight.CheckTelecom))
}

func Test_AllocateFlight(t *testing.T) {
	t.Run("creates_pending_record_and_records_deployed", func(t *testing.T) {
		handle := kernel.NewUUID()
		pilot, drone := sampleCrew(t)

		f, err := flight.AllocateFlight(handle, "delivery-1", 7, pilot.Principal, drone.Principal)

		require.NoError(t, err)
		assert.True(t, f.Handle().IsEqual(handle))
		assert.Equal(t, "delivery-1", f.DeliveryID())
		assert.Equal(t, 7, f.ConopsID())
		assert.True(t, f.PilotPrincipal().IsEqual(pilot.Principal))
		assert.True(t, f.DronePrincipal().IsEqual(drone.Principal))
		assert.False(t, f.IsInitialized())
		assert.Equal(t, flight.StatusPreFlight, f.PilotStatus())
		assert.Equal(t, flight.StatusPreFlight, f.DroneStatus())

		events := f.DrainEvents()
		require.Len(t, events, 1)
		deployed, ok := events[0].(flight.Deployed)
		require.True(t, ok)
		assert.True(t, deployed.Handle.IsEqual(handle))
	})

	t.Run("rejects_invalid_arguments", func(t *testing.T) {
		pilot, drone := sampleCrew(t)

		_, err := flight.AllocateFlight(kernel.UUID{}, "delivery-1", 1, pilot.Principal, drone.Principal)
		assert.Error(t, err)

		_, err = flight.AllocateFlight(kernel.NewUUID(), "", 1, pilot.Principal, drone.Principal)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = flight.AllocateFlight(kernel.NewUUID(), "delivery-1", 0, pilot.Principal, drone.Principal)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = flight.AllocateFlight(kernel.NewUUID(), "delivery-1", 1, kernel.Principal{}, drone.Principal)
		assert.Error(t, err)
	})

	t.Run("pending_flight_refuses_operations", func(t *testing.T) {
		pilot, drone := sampleCrew(t)
		f, err := flight.AllocateFlight(kernel.NewUUID(), "delivery-1", 1, pilot.Principal, drone.Principal)
		require.NoError(t, err)

		assert.ErrorIs(t, f.ChangePilotStatus(flight.StatusFlying), errs.ErrPreconditionFailed)
		assert.ErrorIs(t, f.PickUpParcel(), errs.ErrPreconditionFailed)
		assert.ErrorIs(t, f.CompletePreFlightCheck(flight.CheckEngine), errs.ErrPreconditionFailed)
	})
}

func Test_Flight_Initialize(t *testing.T) {
	t.Run("fixes_plan_and_freezes_air_risks_unvalidated", func(t *testing.T) {
		pilot, drone := sampleCrew(t)
		f, err := flight.AllocateFlight(kernel.NewUUID(), "delivery-1", 1, pilot.Principal, drone.Principal)
		require.NoError(t, err)

		risks := sampleAirRisks(t)
		risks[0] = risks[0].WithValidation(true)

		require.NoError(t, f.Initialize(sampleData(), pilot, drone, risks))

		assert.True(t, f.IsInitialized())
		assert.Equal(t, "Hub Paris 13", f.Data().Depart)
		assert.Equal(t, "John Pilot", f.Pilot().Name)
		assert.Equal(t, "UAS-FR-001", f.Drone().DroneID)
		for _, risk := range f.AirRisks() {
			assert.False(t, risk.Validated())
		}
	})

	t.Run("second_initialization_fails", func(t *testing.T) {
		f := initializedFlight(t)
		pilot, drone := sampleCrew(t)

		err := f.Initialize(sampleData(), pilot, drone, nil)

		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("rejects_incomplete_plan", func(t *testing.T) {
		pilot, drone := sampleCrew(t)
		f, err := flight.AllocateFlight(kernel.NewUUID(), "delivery-1", 1, pilot.Principal, drone.Principal)
		require.NoError(t, err)

		data := sampleData()
		data.Destination = ""

		assert.ErrorIs(t, f.Initialize(data, pilot, drone, nil), errs.ErrValueIsRequired)
	})

	t.Run("rejects_crew_not_bound_at_allocation", func(t *testing.T) {
		pilot, drone := sampleCrew(t)
		f, err := flight.AllocateFlight(kernel.NewUUID(), "delivery-1", 1, pilot.Principal, drone.Principal)
		require.NoError(t, err)

		stranger, err := kernel.NewPrincipal("0xstranger")
		require.NoError(t, err)
		pilot.Principal = stranger

		err = f.Initialize(sampleData(), pilot, drone, nil)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "crew does not match allocation")
	})
}

func Test_Flight_StatusTransitions(t *testing.T) {
	t.Run("canceled_is_unreachable_through_change", func(t *testing.T) {
		f := initializedFlight(t)

		err := f.ChangePilotStatus(flight.StatusCanceled)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "cannot cancel flight this way")
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		f := initializedFlight(t)

		err := f.ChangePilotStatus(flight.Status(9))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "not a valid status")
	})

	t.Run("tracker_only_moves_forward", func(t *testing.T) {
		f := initializedFlight(t)
		clearAirRisks(t, f)
		completePreFlight(t, f)
		require.NoError(t, f.ChangePilotStatus(flight.StatusFlying))

		err := f.ChangePilotStatus(flight.StatusFlying)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "status not allowed")

		err = f.ChangePilotStatus(flight.StatusPreFlight)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("pilot_flying_requires_risks_and_checklist", func(t *testing.T) {
		f := initializedFlight(t)

		err := f.ChangePilotStatus(flight.StatusFlying)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "flying is not allowed")

		clearAirRisks(t, f)
		err = f.ChangePilotStatus(flight.StatusFlying)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		completePreFlight(t, f)
		require.NoError(t, f.ChangePilotStatus(flight.StatusFlying))
		assert.Equal(t, flight.StatusFlying, f.PilotStatus())
	})

	t.Run("drone_flying_requires_only_risks", func(t *testing.T) {
		f := initializedFlight(t)
		clearAirRisks(t, f)

		require.NoError(t, f.ChangeDroneStatus(flight.StatusFlying))

		assert.Equal(t, flight.StatusFlying, f.DroneStatus())
		assert.Equal(t, flight.StatusPreFlight, f.PilotStatus())
	})

	t.Run("canceling_one_air_risk_blocks_takeoff_again", func(t *testing.T) {
		f := initializedFlight(t)
		clearAirRisks(t, f)
		require.NoError(t, f.CancelAirRisk(1))

		err := f.ChangeDroneStatus(flight.StatusFlying)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "flying is not allowed")
	})

	t.Run("skipping_intermediate_statuses_forward_is_allowed", func(t *testing.T) {
		f := initializedFlight(t)
		clearAirRisks(t, f)
		require.NoError(t, f.ChangeDroneStatus(flight.StatusFlying))

		require.NoError(t, f.ChangeDroneStatus(flight.StatusEnded))

		assert.Equal(t, flight.StatusEnded, f.DroneStatus())
	})

	t.Run("records_status_events", func(t *testing.T) {
		f := initializedFlight(t)
		clearAirRisks(t, f)
		f.DrainEvents()

		require.NoError(t, f.ChangeDroneStatus(flight.StatusFlying))

		events := f.DrainEvents()
		require.Len(t, events, 1)
		changed, ok := events[0].(flight.DroneStatusChanged)
		require.True(t, ok)
		assert.Equal(t, flight.StatusPreFlight, changed.OldStatus)
		assert.Equal(t, flight.StatusFlying, changed.NewStatus)
	})
}

func Test_Flight_CancelByPilot(t *testing.T) {
	t.Run("sets_canceled_directly", func(t *testing.T) {
		f := initializedFlight(t)

		require.NoError(t, f.CancelByPilot())

		assert.Equal(t, flight.StatusCanceled, f.PilotStatus())
	})
}

func Test_Flight_Checklists(t *testing.T) {
	t.Run("completion_is_idempotent", func(t *testing.T) {
		f := initializedFlight(t)

		require.NoError(t, f.CompletePreFlightCheck(flight.CheckBattery))
		require.NoError(t, f.CompletePreFlightCheck(flight.CheckBattery))

		done, err := f.PreFlightCheck(flight.CheckBattery)
		require.NoError(t, err)
		assert.True(t, done)

		done, err = f.PreFlightCheck(flight.CheckEngine)
		require.NoError(t, err)
		assert.False(t, done)
	})

	t.Run("postflight_is_independent", func(t *testing.T) {
		f := initializedFlight(t)

		require.NoError(t, f.CompletePostFlightCheck(flight.CheckTelecom))

		done, err := f.PostFlightCheck(flight.CheckTelecom)
		require.NoError(t, err)
		assert.True(t, done)

		done, err = f.PreFlightCheck(flight.CheckTelecom)
		require.NoError(t, err)
		assert.False(t, done)
	})

	t.Run("unknown_check_id_rejected", func(t *testing.T) {
		f := initializedFlight(t)

		assert.ErrorIs(t, f.CompletePreFlightCheck(flight.Check(3)), errs.ErrValueIsOutOfRange)
	})
}

func Test_Flight_AirRisks(t *testing.T) {
	t.Run("validation_toggles", func(t *testing.T) {
		f := initializedFlight(t)

		require.NoError(t, f.ValidateAirRisk(0))
		assert.True(t, f.AirRisks()[0].Validated())

		require.NoError(t, f.CancelAirRisk(0))
		assert.False(t, f.AirRisks()[0].Validated())
	})

	t.Run("out_of_range_id_is_not_found", func(t *testing.T) {
		f := initializedFlight(t)

		assert.ErrorIs(t, f.ValidateAirRisk(5), errs.ErrObjectNotFound)
		assert.ErrorIs(t, f.CancelAirRisk(-1), errs.ErrObjectNotFound)
	})
}

func Test_Flight_ParcelCustody(t *testing.T) {
	t.Run("pickup_then_deliver", func(t *testing.T) {
		f := initializedFlight(t)
		f.DrainEvents()

		require.NoError(t, f.PickUpParcel())
		require.NoError(t, f.DeliverParcel())

		assert.True(t, f.ParcelPickedUp())
		assert.True(t, f.ParcelDelivered())

		events := f.DrainEvents()
		require.Len(t, events, 2)
		assert.IsType(t, flight.ParcelPickedUp{}, events[0])
		assert.IsType(t, flight.ParcelDelivered{}, events[1])
	})

	t.Run("double_pickup_fails", func(t *testing.T) {
		f := initializedFlight(t)
		require.NoError(t, f.PickUpParcel())

		err := f.PickUpParcel()

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "parcel already picked up")
	})

	t.Run("deliver_without_pickup_fails", func(t *testing.T) {
		f := initializedFlight(t)

		err := f.DeliverParcel()

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "parcel not picked up before")
	})
}

func Test_Flight_Track(t *testing.T) {
	t.Run("checkpoints_append_in_order", func(t *testing.T) {
		f := initializedFlight(t)
		f.DrainEvents()
		first := time.Date(2024, 5, 17, 9, 31, 0, 0, time.UTC)
		second := first.Add(time.Minute)

		require.NoError(t, f.AddCheckpoint(first, 48.8566, 2.3522))
		require.NoError(t, f.AddCheckpoint(second, 48.8580, 2.3500))

		track := f.Checkpoints()
		require.Len(t, track, 2)
		assert.Equal(t, first, track[0].At)
		assert.Equal(t, 48.8580, track[1].Latitude)

		events := f.DrainEvents()
		require.Len(t, events, 2)
		assert.IsType(t, flight.CheckpointAdded{}, events[0])
	})

	t.Run("risk_events_append_and_read_back", func(t *testing.T) {
		f := initializedFlight(t)
		at := time.Date(2024, 5, 17, 9, 35, 0, 0, time.UTC)

		require.NoError(t, f.AddRiskEvent(at, flight.RiskTelecom))

		event, err := f.RiskEvent(0)
		require.NoError(t, err)
		assert.Equal(t, flight.RiskTelecom, event.Risk)
		assert.Equal(t, at, event.At)

		_, err = f.RiskEvent(1)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unknown_risk_rejected", func(t *testing.T) {
		f := initializedFlight(t)

		err := f.AddRiskEvent(time.Now(), flight.Risk(7))

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func Test_RestoreFlight(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		handle := kernel.NewUUID()
		pilot, drone := sampleCrew(t)
		risks := sampleAirRisks(t)
		checkpoints := []flight.Checkpoint{{At: time.Now().UTC(), Latitude: 48.85, Longitude: 2.35}}
		riskEvents := []flight.RiskEvent{{At: time.Now().UTC(), Risk: flight.RiskEngine}}

		f, err := flight.RestoreFlight(
			handle, "delivery-1", 1,
			pilot.Principal, drone.Principal,
			true, sampleData(),
			pilot, drone,
			flight.StatusFlying, flight.StatusFlying,
			risks,
			flight.Checklist{true, true, true}, flight.Checklist{},
			true, false,
			checkpoints, riskEvents,
		)

		require.NoError(t, err)
		assert.True(t, f.IsInitialized())
		assert.Equal(t, flight.StatusFlying, f.PilotStatus())
		assert.True(t, f.ParcelPickedUp())
		assert.False(t, f.ParcelDelivered())
		assert.Len(t, f.Checkpoints(), 1)
		assert.Len(t, f.RiskEvents(), 1)
		assert.True(t, f.PreFlightChecks().AllComplete())
		assert.Empty(t, f.Events())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		pilot, drone := sampleCrew(t)

		_, err := flight.RestoreFlight(
			kernel.NewUUID(), "delivery-1", 1,
			pilot.Principal, drone.Principal,
			true, sampleData(),
			pilot, drone,
			flight.Status(9), flight.StatusPreFlight,
			nil, flight.Checklist{}, flight.Checklist{},
			false, false, nil, nil,
		)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
