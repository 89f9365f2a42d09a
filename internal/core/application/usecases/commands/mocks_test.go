package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"starwings/internal/core/application/usecases/commands"
	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/conops"
	"starwings/internal/core/domain/model/crew"
	"starwings/internal/core/domain/model/delivery"
	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/core/ports"
)

// Mock implementations for testing.
type MockAccessRepository struct {
	mock.Mock
}

func (m *MockAccessRepository) Get(ctx context.Context) (*access.Registry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*access.Registry), args.Error(1)
}

func (m *MockAccessRepository) Save(ctx context.Context, registry *access.Registry) error {
	args := m.Called(ctx, registry)
	return args.Error(0)
}

type MockConopsRepository struct {
	mock.Mock
}

func (m *MockConopsRepository) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockConopsRepository) Add(ctx context.Context, aggregate *conops.Conops) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockConopsRepository) Update(ctx context.Context, aggregate *conops.Conops) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockConopsRepository) Get(ctx context.Context, id int) (*conops.Conops, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*conops.Conops), args.Error(1)
}

type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) NextSequence(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id string) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockCrewRepository struct {
	mock.Mock
}

func (m *MockCrewRepository) NextPilotIndex(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCrewRepository) AddPilot(ctx context.Context, pilot *crew.Pilot) error {
	args := m.Called(ctx, pilot)
	return args.Error(0)
}

func (m *MockCrewRepository) UpdatePilot(ctx context.Context, pilot *crew.Pilot) error {
	args := m.Called(ctx, pilot)
	return args.Error(0)
}

func (m *MockCrewRepository) GetPilot(ctx context.Context, principal kernel.Principal) (*crew.Pilot, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crew.Pilot), args.Error(1)
}

func (m *MockCrewRepository) NextDroneIndex(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCrewRepository) AddDrone(ctx context.Context, drone *crew.Drone) error {
	args := m.Called(ctx, drone)
	return args.Error(0)
}

func (m *MockCrewRepository) UpdateDrone(ctx context.Context, drone *crew.Drone) error {
	args := m.Called(ctx, drone)
	return args.Error(0)
}

func (m *MockCrewRepository) GetDrone(ctx context.Context, principal kernel.Principal) (*crew.Drone, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crew.Drone), args.Error(1)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Add(ctx context.Context, aggregate *flight.Flight) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, aggregate *flight.Flight) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockFlightRepository) Get(ctx context.Context, handle kernel.UUID) (*flight.Flight, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flight.Flight), args.Error(1)
}

func (m *MockFlightRepository) Exists(ctx context.Context, handle kernel.UUID) (bool, error) {
	args := m.Called(ctx, handle)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlightRepository) GetAllHandles(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

// MockUoW implements every unit of work shape used by the handlers.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AccessRepository() ports.AccessRepository {
	args := m.Called()
	return args.Get(0).(ports.AccessRepository)
}

func (m *MockUoW) ConopsRepository() ports.ConopsRepository {
	args := m.Called()
	return args.Get(0).(ports.ConopsRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) CrewRepository() ports.CrewRepository {
	args := m.Called()
	return args.Get(0).(ports.CrewRepository)
}

func (m *MockUoW) FlightRepository() ports.FlightRepository {
	args := m.Called()
	return args.Get(0).(ports.FlightRepository)
}

type MockAccessUoWFactory struct {
	mock.Mock
}

func (m *MockAccessUoWFactory) Create() commands.AccessUoW {
	args := m.Called()
	return args.Get(0).(commands.AccessUoW)
}

type MockConopsUoWFactory struct {
	mock.Mock
}

func (m *MockConopsUoWFactory) Create() commands.ConopsUoW {
	args := m.Called()
	return args.Get(0).(commands.ConopsUoW)
}

type MockDeliveryUoWFactory struct {
	mock.Mock
}

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockCrewUoWFactory struct {
	mock.Mock
}

func (m *MockCrewUoWFactory) Create() commands.CrewUoW {
	args := m.Called()
	return args.Get(0).(commands.CrewUoW)
}

type MockFlightUoWFactory struct {
	mock.Mock
}

func (m *MockFlightUoWFactory) Create() commands.FlightUoW {
	args := m.Called()
	return args.Get(0).(commands.FlightUoW)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
