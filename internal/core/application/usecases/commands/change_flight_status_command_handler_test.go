package commands_test

import (
	"context"
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

// flightFixture holds a crewed, initialized flight together with the
// registry granting its crew their roles.
type flightFixture struct {
	pilotPrincipal kernel.Principal
	dronePrincipal kernel.Principal
	registry       *access.Registry
	record         *flight.Flight
}

func newFlightFixture(t testing.TB) *flightFixture {
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

	record, err := flight.AllocateFlight(kernel.NewUUID(), "delivery-1", 1, pilotPrincipal, dronePrincipal)
	require.NoError(t, err)
	airRisk, err := conops.NewAirRisk("Rennes hospital", conops.CHU)
	require.NoError(t, err)
	err = record.Initialize(
		flight.FlightData{
			ScheduledAt:     time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			DurationMinutes: 25,
			Depart:          "HUB-A",
			Destination:     "HUB-B",
		},
		pilot.Snapshot(),
		drone.Snapshot(),
		[]conops.AirRisk{airRisk},
	)
	require.NoError(t, err)
	record.DrainEvents()

	return &flightFixture{
		pilotPrincipal: pilotPrincipal,
		dronePrincipal: dronePrincipal,
		registry:       registry,
		record:         record,
	}
}

// clearForTakeoff validates every air risk and completes the pre-flight
// checklist so the pilot tracker may enter Flying.
func (f *flightFixture) clearForTakeoff(t testing.TB) {
	t.Helper()
	for i := range f.record.AirRisks() {
		require.NoError(t, f.record.ValidateAirRisk(i))
	}
	for _, check := range []flight.Check{flight.CheckEngine, flight.CheckBattery, flight.CheckTelecom} {
		require.NoError(t, f.record.CompletePreFlightCheck(check))
	}
}

// expectFlightLookup wires the standard Begin/registry/flight-fetch chain
// shared by every flight-scoped handler test, ending before the mutation.
func (f *flightFixture) expectFlightLookup(
	ctx context.Context,
	mockAccessRepo *MockAccessRepository,
	mockFlightRepo *MockFlightRepository,
	mockUoW *MockUoW,
	updated bool,
) {
	calls := []*mock.Call{
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AccessRepository").Return(mockAccessRepo).Once(),
		mockAccessRepo.On("Get", ctx).Return(f.registry, nil).Once(),
		mockUoW.On("FlightRepository").Return(mockFlightRepo).Once(),
		mockFlightRepo.On("Get", ctx, f.record.Handle()).Return(f.record, nil).Once(),
	}
	if updated {
		calls = append(calls,
			mockFlightRepo.On("Update", ctx, f.record).Return(nil).Once(),
			mockUoW.On("Commit", ctx).Return(nil).Once(),
		)
	}
	calls = append(calls, mockUoW.On("Rollback", ctx).Return(nil).Once())
	mock.InOrder(calls...)
}

func TestChangeFlightStatusCommandHandler_Handle_PilotMovesOwnTracker(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newFlightFixture(t)
	fix.clearForTakeoff(t)

	cmd, err := commands.NewChangeFlightStatusCommand(fix.pilotPrincipal, fix.record.Handle(), flight.StatusFlying)
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockFlightUoWFactory)

	fix.expectFlightLookup(ctx, mockAccessRepo, mockFlightRepo, mockUoW, true)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeFlightStatusCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, flight.StatusFlying, fix.record.PilotStatus())
	assert.Equal(t, flight.StatusPreFlight, fix.record.DroneStatus())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockAccessRepo.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}

func TestChangeFlightStatusCommandHandler_Handle_DroneTrackerIsIndependent(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newFlightFixture(t)
	// The drone tracker skips the pre-flight checklist gate, but the air
	// risks still have to be validated.
	for i := range fix.record.AirRisks() {
		require.NoError(t, fix.record.ValidateAirRisk(i))
	}

	cmd, err := commands.NewChangeFlightStatusCommand(fix.dronePrincipal, fix.record.Handle(), flight.StatusFlying)
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockFlightUoWFactory)

	fix.expectFlightLookup(ctx, mockAccessRepo, mockFlightRepo, mockUoW, true)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeFlightStatusCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, flight.StatusPreFlight, fix.record.PilotStatus())
	assert.Equal(t, flight.StatusFlying, fix.record.DroneStatus())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}

func TestChangeFlightStatusCommandHandler_Handle_UnclearedFlyingIsRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newFlightFixture(t)

	cmd, err := commands.NewChangeFlightStatusCommand(fix.pilotPrincipal, fix.record.Handle(), flight.StatusFlying)
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockFlightUoWFactory)

	fix.expectFlightLookup(ctx, mockAccessRepo, mockFlightRepo, mockUoW, false)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeFlightStatusCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, flight.StatusPreFlight, fix.record.PilotStatus())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}

func TestChangeFlightStatusCommandHandler_Handle_StrangerCrewIsRefused(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newFlightFixture(t)

	// A pilot by role, but not this flight's pilot.
	otherPilot := principal(t, "0xpilot2")
	root := principal(t, "0xroot")
	require.NoError(t, fix.registry.GrantRole(root, access.PilotRole, otherPilot))
	fix.registry.DrainEvents()

	cmd, err := commands.NewChangeFlightStatusCommand(otherPilot, fix.record.Handle(), flight.StatusEnded)
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockFlightUoWFactory)

	fix.expectFlightLookup(ctx, mockAccessRepo, mockFlightRepo, mockUoW, false)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewChangeFlightStatusCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrAccessRefused)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}

func TestCancelFlightCommandHandler_Handle_PilotCancels(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newFlightFixture(t)

	cmd, err := commands.NewCancelFlightCommand(fix.pilotPrincipal, fix.record.Handle())
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockFlightUoWFactory)

	fix.expectFlightLookup(ctx, mockAccessRepo, mockFlightRepo, mockUoW, true)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCancelFlightCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, flight.StatusCanceled, fix.record.PilotStatus())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}
