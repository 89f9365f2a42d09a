package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwings/internal/core/application/usecases/commands"
	"starwings/internal/core/domain/model/flight"
	"starwings/internal/pkg/errs"
)

func TestPickUpParcelCommandHandler_Handle_DroneTakesCustody(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newFlightFixture(t)

	cmd, err := commands.NewPickUpParcelCommand(fix.dronePrincipal, fix.record.Handle())
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockFlightUoWFactory)

	fix.expectFlightLookup(ctx, mockAccessRepo, mockFlightRepo, mockUoW, true)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewPickUpParcelCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, fix.record.ParcelPickedUp())
	assert.False(t, fix.record.ParcelDelivered())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}

func TestDeliverParcelCommandHandler_Handle_RequiresPickupFirst(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newFlightFixture(t)

	cmd, err := commands.NewDeliverParcelCommand(fix.dronePrincipal, fix.record.Handle())
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockFlightUoWFactory)

	fix.expectFlightLookup(ctx, mockAccessRepo, mockFlightRepo, mockUoW, false)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeliverParcelCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.False(t, fix.record.ParcelDelivered())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}

func TestDeliverParcelCommandHandler_Handle_AfterPickup(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newFlightFixture(t)
	require.NoError(t, fix.record.PickUpParcel())
	fix.record.DrainEvents()

	cmd, err := commands.NewDeliverParcelCommand(fix.dronePrincipal, fix.record.Handle())
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockFlightUoWFactory)

	fix.expectFlightLookup(ctx, mockAccessRepo, mockFlightRepo, mockUoW, true)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeliverParcelCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, fix.record.ParcelDelivered())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}

func TestPickUpParcelCommandHandler_Handle_PilotIsNotTheDrone(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newFlightFixture(t)

	cmd, err := commands.NewPickUpParcelCommand(fix.pilotPrincipal, fix.record.Handle())
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockFlightUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("AccessRepository").Return(mockAccessRepo).Once()
	mockAccessRepo.On("Get", ctx).Return(fix.registry, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewPickUpParcelCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert: the pilot does not hold DRONE_ROLE at all.
	require.ErrorIs(t, err, errs.ErrAccessRefused)
	assert.False(t, fix.record.ParcelPickedUp())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockAccessRepo.AssertExpectations(t)
}

func TestAddCheckpointCommandHandler_Handle_AppendsPosition(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newFlightFixture(t)
	at := time.Date(2026, 3, 14, 10, 12, 0, 0, time.UTC)

	cmd, err := commands.NewAddCheckpointCommand(fix.dronePrincipal, fix.record.Handle(), at, 48.1173, -1.6778)
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockFlightUoWFactory)

	fix.expectFlightLookup(ctx, mockAccessRepo, mockFlightRepo, mockUoW, true)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddCheckpointCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	checkpoints := fix.record.Checkpoints()
	require.Len(t, checkpoints, 1)
	assert.Equal(t, at, checkpoints[0].At)
	assert.InDelta(t, 48.1173, checkpoints[0].Latitude, 1e-9)
	assert.InDelta(t, -1.6778, checkpoints[0].Longitude, 1e-9)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}

func TestAddCheckpointCommand_RejectsOutOfRangeCoordinates(t *testing.T) {
	fix := newFlightFixture(t)
	at := time.Now()

	_, err := commands.NewAddCheckpointCommand(fix.dronePrincipal, fix.record.Handle(), at, 91, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewAddCheckpointCommand(fix.dronePrincipal, fix.record.Handle(), at, 0, -181)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestAddRiskEventCommandHandler_Handle_RecordsInFlightRisk(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newFlightFixture(t)
	at := time.Date(2026, 3, 14, 10, 18, 0, 0, time.UTC)

	cmd, err := commands.NewAddRiskEventCommand(fix.dronePrincipal, fix.record.Handle(), at, flight.RiskGtc)
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockFlightUoWFactory)

	fix.expectFlightLookup(ctx, mockAccessRepo, mockFlightRepo, mockUoW, true)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddRiskEventCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	events := fix.record.RiskEvents()
	require.Len(t, events, 1)
	assert.Equal(t, flight.RiskGtc, events[0].Risk)
	assert.Equal(t, at, events[0].At)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}
