package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"starwings/internal/core/application/usecases/commands"
	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/conops"
	"starwings/internal/core/domain/model/crew"
	"starwings/internal/core/domain/model/delivery"
	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/core/domain/services"
	"starwings/internal/pkg/errs"
)

type allocationFixture struct {
	pilotPrincipal kernel.Principal
	dronePrincipal kernel.Principal
	registry       *access.Registry
	delivery       *delivery.Delivery
	conops         *conops.Conops
	pilot          *crew.Pilot
	drone          *crew.Drone
	handleFactory  services.FlightHandleFactory
	cmd            *commands.AllocateFlightCommand
}

func newAllocationFixture(t testing.TB) *allocationFixture {
	t.Helper()

	pilotPrincipal := principal(t, "0xpilot1")
	dronePrincipal := principal(t, "0xdrone1")
	registry := bootstrapRegistry(t, map[access.Role][]kernel.Principal{
		access.PilotRole: {pilotPrincipal},
		access.DroneRole: {dronePrincipal},
	})

	deliveryID := delivery.DeliveryID(1, "ORDER-1")
	deliveryRecord, err := delivery.NewDelivery(
		deliveryID, "ORDER-1",
		"Central Pharmacy", principal(t, "0xfrom"),
		"Field Hospital", principal(t, "0xto"),
		"HUB-A", "HUB-B",
	)
	require.NoError(t, err)

	dossier, err := conops.NewConops(
		1, "pharmacy to hospital", "HUB-A", "HUB-B", "D35 crossing", "school zone",
		[]conops.AirRiskInput{{Name: "Rennes hospital", RiskType: conops.CHU}},
		3, 4,
	)
	require.NoError(t, err)

	pilot, err := crew.NewPilot(0, pilotPrincipal, "John")
	require.NoError(t, err)
	drone, err := crew.NewDrone(0, dronePrincipal, "UAS-FR-001", "quadcopter")
	require.NoError(t, err)

	handleFactory, err := services.NewFlightHandleFactory(kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewAllocateFlightCommand(pilotPrincipal, deliveryID, 1, dronePrincipal, "salt-1")
	require.NoError(t, err)

	return &allocationFixture{
		pilotPrincipal: pilotPrincipal,
		dronePrincipal: dronePrincipal,
		registry:       registry,
		delivery:       deliveryRecord,
		conops:         dossier,
		pilot:          pilot,
		drone:          drone,
		handleFactory:  handleFactory,
		cmd:            &cmd,
	}
}

func (f *allocationFixture) expectedHandle(t testing.TB) kernel.UUID {
	t.Helper()
	handle, err := f.handleFactory.Handle("salt-1", services.FlightAllocation{
		DeliveryID:     f.delivery.ID(),
		ConopsID:       1,
		PilotPrincipal: f.pilotPrincipal,
		DronePrincipal: f.dronePrincipal,
	})
	require.NoError(t, err)
	return handle
}

func TestAllocateFlightCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newAllocationFixture(t)
	expectedHandle := fix.expectedHandle(t)

	mockAccessRepo := new(MockAccessRepository)
	mockDeliveryRepo := new(MockDeliveryRepository)
	mockConopsRepo := new(MockConopsRepository)
	mockCrewRepo := new(MockCrewRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	var addedFlight *flight.Flight
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AccessRepository").Return(mockAccessRepo).Once(),
		mockAccessRepo.On("Get", ctx).Return(fix.registry, nil).Once(),
		mockUoW.On("DeliveryRepository").Return(mockDeliveryRepo).Once(),
		mockDeliveryRepo.On("Get", ctx, fix.delivery.ID()).Return(fix.delivery, nil).Once(),
		mockUoW.On("ConopsRepository").Return(mockConopsRepo).Once(),
		mockConopsRepo.On("Get", ctx, 1).Return(fix.conops, nil).Once(),
		mockUoW.On("CrewRepository").Return(mockCrewRepo).Once(),
		mockCrewRepo.On("GetPilot", ctx, fix.pilotPrincipal).Return(fix.pilot, nil).Once(),
		mockCrewRepo.On("GetDrone", ctx, fix.dronePrincipal).Return(fix.drone, nil).Once(),
		mockUoW.On("FlightRepository").Return(mockFlightRepo).Once(),
		mockFlightRepo.On("Exists", ctx, expectedHandle).Return(false, nil).Once(),
		mockFlightRepo.On("Add", ctx, mock.AnythingOfType("*flight.Flight")).
			Run(func(args mock.Arguments) {
				addedFlight = args.Get(1).(*flight.Flight)
			}).Return(nil).Once(),
		mockCrewRepo.On("UpdatePilot", ctx, fix.pilot).Return(nil).Once(),
		mockCrewRepo.On("UpdateDrone", ctx, fix.drone).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAllocateFlightCommandHandler(mockFactory, fix.handleFactory)

	// Act
	err := handler.Handle(ctx, fix.cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, expectedHandle.IsEqual(fix.cmd.Handle()))
	require.NotNil(t, addedFlight)
	assert.True(t, expectedHandle.IsEqual(addedFlight.Handle()))
	assert.False(t, addedFlight.IsInitialized())
	assert.Equal(t, []kernel.UUID{expectedHandle}, fix.pilot.FlightHandles())
	assert.Equal(t, []kernel.UUID{expectedHandle}, fix.drone.FlightHandles())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockAccessRepo.AssertExpectations(t)
	mockDeliveryRepo.AssertExpectations(t)
	mockConopsRepo.AssertExpectations(t)
	mockCrewRepo.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}

func TestAllocateFlightCommandHandler_Handle_HandleCollision(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newAllocationFixture(t)
	expectedHandle := fix.expectedHandle(t)

	mockAccessRepo := new(MockAccessRepository)
	mockDeliveryRepo := new(MockDeliveryRepository)
	mockConopsRepo := new(MockConopsRepository)
	mockCrewRepo := new(MockCrewRepository)
	mockFlightRepo := new(MockFlightRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AccessRepository").Return(mockAccessRepo).Once(),
		mockAccessRepo.On("Get", ctx).Return(fix.registry, nil).Once(),
		mockUoW.On("DeliveryRepository").Return(mockDeliveryRepo).Once(),
		mockDeliveryRepo.On("Get", ctx, fix.delivery.ID()).Return(fix.delivery, nil).Once(),
		mockUoW.On("ConopsRepository").Return(mockConopsRepo).Once(),
		mockConopsRepo.On("Get", ctx, 1).Return(fix.conops, nil).Once(),
		mockUoW.On("CrewRepository").Return(mockCrewRepo).Once(),
		mockCrewRepo.On("GetPilot", ctx, fix.pilotPrincipal).Return(fix.pilot, nil).Once(),
		mockCrewRepo.On("GetDrone", ctx, fix.dronePrincipal).Return(fix.drone, nil).Once(),
		mockUoW.On("FlightRepository").Return(mockFlightRepo).Once(),
		mockFlightRepo.On("Exists", ctx, expectedHandle).Return(true, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAllocateFlightCommandHandler(mockFactory, fix.handleFactory)

	// Act
	err := handler.Handle(ctx, fix.cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
	assert.True(t, fix.cmd.Handle().IsZero())
	assert.Empty(t, fix.pilot.FlightHandles())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockFlightRepo.AssertExpectations(t)
}

func TestAllocateFlightCommandHandler_Handle_DeletedDroneIsRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newAllocationFixture(t)
	require.NoError(t, fix.drone.Delete())

	mockAccessRepo := new(MockAccessRepository)
	mockDeliveryRepo := new(MockDeliveryRepository)
	mockConopsRepo := new(MockConopsRepository)
	mockCrewRepo := new(MockCrewRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AccessRepository").Return(mockAccessRepo).Once(),
		mockAccessRepo.On("Get", ctx).Return(fix.registry, nil).Once(),
		mockUoW.On("DeliveryRepository").Return(mockDeliveryRepo).Once(),
		mockDeliveryRepo.On("Get", ctx, fix.delivery.ID()).Return(fix.delivery, nil).Once(),
		mockUoW.On("ConopsRepository").Return(mockConopsRepo).Once(),
		mockConopsRepo.On("Get", ctx, 1).Return(fix.conops, nil).Once(),
		mockUoW.On("CrewRepository").Return(mockCrewRepo).Once(),
		mockCrewRepo.On("GetPilot", ctx, fix.pilotPrincipal).Return(fix.pilot, nil).Once(),
		mockCrewRepo.On("GetDrone", ctx, fix.dronePrincipal).Return(fix.drone, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAllocateFlightCommandHandler(mockFactory, fix.handleFactory)

	// Act
	err := handler.Handle(ctx, fix.cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.True(t, fix.cmd.Handle().IsZero())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCrewRepo.AssertExpectations(t)
}

func TestAllocateFlightCommandHandler_Handle_NonPilotIsRefused(t *testing.T) {
	// Arrange
	ctx := t.Context()
	fix := newAllocationFixture(t)

	stranger := principal(t, "0xstranger")
	cmd, err := commands.NewAllocateFlightCommand(stranger, fix.delivery.ID(), 1, fix.dronePrincipal, "salt-1")
	require.NoError(t, err)

	mockAccessRepo := new(MockAccessRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AccessRepository").Return(mockAccessRepo).Once(),
		mockAccessRepo.On("Get", ctx).Return(fix.registry, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAllocateFlightCommandHandler(mockFactory, fix.handleFactory)

	// Act
	err = handler.Handle(ctx, &cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrAccessRefused)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockAccessRepo.AssertExpectations(t)
}
