package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"starwings/internal/core/application/usecases/commands"
	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/conops"
	"starwings/internal/core/domain/model/crew"
	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
)

type initializationFixture struct {
	pilotPrincipal kernel.Principal
	dronePrincipal kernel.Principal
	registry       *access.Registry
	pilot          *crew.Pilot
	drone          *crew.Drone
	dossier        *conops.Conops
	record         *flight.Flight
}

func newInitializationFixture(t testing.TB) *initializationFixture {
	t.Helper()

	pilotPrincipal := principal(t, "0xpilot1")
	dronePrincipal := principal(t, "0xdrone1")
	registry := bootstrapRegistry(t, map[access.Role][]kernel.Principal{
		access.PilotRole: {pilotPrincipal},
		access.DroneRole: {dronePrincipal},
	})

	pilot, err := crew.NewPilot(0, pilotPrincipal, "John")
	require.NoError(t, err)
	drone, err := crew.NewDrone(0, dronePrincipal, "UAS-FR-001", "quadcopter")
	require.NoError(t, err)

	dossier, err := conops.NewConops(
		1, "pharmacy to hospital", "HUB-A", "HUB-B", "D35 crossing", "school zone",
		[]conops.AirRiskInput{
			{Name: "Rennes hospital", RiskType: conops.CHU},
			{Name: "Saint-Jacques airfield", RiskType: conops.Aerodrome},
		},
		3, 4,
	)
	require.NoError(t, err)

	record, err := flight.AllocateFlight(kernel.NewUUID(), "delivery-1", 1, pilotPrincipal, dronePrincipal)
	require.NoError(t, err)
	record.DrainEvents()

	return &initializationFixture{
		pilotPrincipal: pilotPrincipal,
		dronePrincipal: dronePrincipal,
		registry:       registry,
		pilot:          pilot,
		drone:          drone,
		dossier:        dossier,
		record:         record,
	}
}

func TestInitializeFlightCommandHandler_Handle_FixesPlanAndSnapshots(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newInitializationFixture(t)
	scheduledAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	cmd, err := commands.NewInitializeFlightCommand(
		fix.pilotPrincipal, fix.record.Handle(),
		scheduledAt, 25, "HUB-A", "HUB-B",
	)
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockConopsRepo := new(MockConopsRepository)
	mockCrewRepo := new(MockCrewRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AccessRepository").Return(mockAccessRepo).Once(),
		mockAccessRepo.On("Get", ctx).Return(fix.registry, nil).Once(),
		mockUoW.On("FlightRepository").Return(mockFlightRepo).Once(),
		mockFlightRepo.On("Get", ctx, fix.record.Handle()).Return(fix.record, nil).Once(),
		mockUoW.On("CrewRepository").Return(mockCrewRepo).Once(),
		mockCrewRepo.On("GetPilot", ctx, fix.pilotPrincipal).Return(fix.pilot, nil).Once(),
		mockCrewRepo.On("GetDrone", ctx, fix.dronePrincipal).Return(fix.drone, nil).Once(),
		mockUoW.On("ConopsRepository").Return(mockConopsRepo).Once(),
		mockConopsRepo.On("Get", ctx, 1).Return(fix.dossier, nil).Once(),
		mockFlightRepo.On("Update", ctx, fix.record).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewInitializeFlightCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, fix.record.IsInitialized())
	assert.Equal(t, scheduledAt, fix.record.Data().ScheduledAt)
	assert.Equal(t, 25, fix.record.Data().DurationMinutes)
	assert.Equal(t, "John", fix.record.Pilot().Name)
	assert.Equal(t, "UAS-FR-001", fix.record.Drone().DroneID)

	// Air risks come in unvalidated, whatever the dossier says.
	risks := fix.record.AirRisks()
	require.Len(t, risks, 2)
	for _, risk := range risks {
		assert.False(t, risk.Validated())
	}
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockAccessRepo.AssertExpectations(t)
	mockConopsRepo.AssertExpectations(t)
	mockCrewRepo.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}

func TestInitializeFlightCommandHandler_Handle_SecondInitializationFails(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newInitializationFixture(t)
	require.NoError(t, fix.record.Initialize(
		flight.FlightData{ScheduledAt: time.Now(), DurationMinutes: 25, Depart: "HUB-A", Destination: "HUB-B"},
		fix.pilot.Snapshot(),
		fix.drone.Snapshot(),
		fix.dossier.AirRisks(),
	))

	cmd, err := commands.NewInitializeFlightCommand(
		fix.pilotPrincipal, fix.record.Handle(),
		time.Now(), 30, "HUB-A", "HUB-B",
	)
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockConopsRepo := new(MockConopsRepository)
	mockCrewRepo := new(MockCrewRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AccessRepository").Return(mockAccessRepo).Once(),
		mockAccessRepo.On("Get", ctx).Return(fix.registry, nil).Once(),
		mockUoW.On("FlightRepository").Return(mockFlightRepo).Once(),
		mockFlightRepo.On("Get", ctx, fix.record.Handle()).Return(fix.record, nil).Once(),
		mockUoW.On("CrewRepository").Return(mockCrewRepo).Once(),
		mockCrewRepo.On("GetPilot", ctx, fix.pilotPrincipal).Return(fix.pilot, nil).Once(),
		mockCrewRepo.On("GetDrone", ctx, fix.dronePrincipal).Return(fix.drone, nil).Once(),
		mockUoW.On("ConopsRepository").Return(mockConopsRepo).Once(),
		mockConopsRepo.On("Get", ctx, 1).Return(fix.dossier, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewInitializeFlightCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, 25, fix.record.Data().DurationMinutes)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}

func TestInitializeFlightCommandHandler_Handle_OtherPilotIsRefused(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newInitializationFixture(t)

	otherPilot := principal(t, "0xpilot2")
	root := principal(t, "0xroot")
	require.NoError(t, fix.registry.GrantRole(root, access.PilotRole, otherPilot))
	fix.registry.DrainEvents()

	cmd, err := commands.NewInitializeFlightCommand(
		otherPilot, fix.record.Handle(),
		time.Now(), 25, "HUB-A", "HUB-B",
	)
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AccessRepository").Return(mockAccessRepo).Once(),
		mockAccessRepo.On("Get", ctx).Return(fix.registry, nil).Once(),
		mockUoW.On("FlightRepository").Return(mockFlightRepo).Once(),
		mockFlightRepo.On("Get", ctx, fix.record.Handle()).Return(fix.record, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewInitializeFlightCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrAccessRefused)
	assert.False(t, fix.record.IsInitialized())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}
