package crewrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"starwings/internal/adapters/out/postgres/crewrepo"
	"starwings/internal/core/domain/model/crew"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate any) {
	m.Called(aggregate)
}

// CrewRepositoryIntegrationTestSuite provides integration tests for
// CrewRepository using PostgreSQL containers.
type CrewRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *crewrepo.GormCrewRepository
	tracker    *MockAggregateTracker
}

func (suite *CrewRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&crewrepo.PilotDTO{},
		&crewrepo.PilotFlightDTO{},
		&crewrepo.DroneDTO{},
		&crewrepo.DroneFlightDTO{},
	))
}

func (suite *CrewRepositoryIntegrationTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM pilot_flights")
	suite.db.Exec("DELETE FROM drone_flights")
	suite.db.Exec("DELETE FROM pilots")
	suite.db.Exec("DELETE FROM drones")

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything).Maybe()
	suite.repository = crewrepo.NewGormCrewRepository(suite.db, suite.tracker)
}

func (suite *CrewRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CrewRepositoryIntegrationTestSuite) principal(token string) kernel.Principal {
	p, err := kernel.NewPrincipal(token)
	suite.Require().NoError(err)
	return p
}

func (suite *CrewRepositoryIntegrationTestSuite) TestPilotRoundTrip() {
	ctx := context.Background()
	principal := suite.principal("0xpilot1")

	pilot, err := crew.NewPilot(0, principal, "John")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddPilot(ctx, pilot))

	restored, err := suite.repository.GetPilot(ctx, principal)
	suite.Require().NoError(err)
	suite.Equal(0, restored.Index())
	suite.Equal("John", restored.Name())
	suite.True(restored.Principal().IsEqual(principal))
	suite.False(restored.IsDeleted())
	suite.Empty(restored.FlightHandles())
}

func (suite *CrewRepositoryIntegrationTestSuite) TestPilotFlightHistoryKeepsOrder() {
	ctx := context.Background()
	principal := suite.principal("0xpilot1")

	pilot, err := crew.NewPilot(0, principal, "John")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddPilot(ctx, pilot))

	handles := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	for _, handle := range handles {
		suite.Require().NoError(pilot.RecordFlight(handle))
	}
	suite.Require().NoError(suite.repository.UpdatePilot(ctx, pilot))

	restored, err := suite.repository.GetPilot(ctx, principal)
	suite.Require().NoError(err)
	suite.Require().Len(restored.FlightHandles(), 3)
	for i, handle := range restored.FlightHandles() {
		suite.True(handles[i].IsEqual(handle))
	}
}

func (suite *CrewRepositoryIntegrationTestSuite) TestDeletedPilotIsStillReturned() {
	ctx := context.Background()
	principal := suite.principal("0xpilot1")

	pilot, err := crew.NewPilot(0, principal, "John")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddPilot(ctx, pilot))

	suite.Require().NoError(pilot.Delete())
	suite.Require().NoError(suite.repository.UpdatePilot(ctx, pilot))

	restored, err := suite.repository.GetPilot(ctx, principal)
	suite.Require().NoError(err)
	suite.True(restored.IsDeleted())
	suite.Equal(0, restored.Index())
}

func (suite *CrewRepositoryIntegrationTestSuite) TestUnknownPilotIsNotFound() {
	_, err := suite.repository.GetPilot(context.Background(), suite.principal("0xghost"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CrewRepositoryIntegrationTestSuite) TestNextPilotIndexGrows() {
	ctx := context.Background()

	next, err := suite.repository.NextPilotIndex(ctx)
	suite.Require().NoError(err)
	suite.Equal(0, next)

	pilot, err := crew.NewPilot(next, suite.principal("0xpilot1"), "John")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddPilot(ctx, pilot))

	next, err = suite.repository.NextPilotIndex(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, next)
}

func (suite *CrewRepositoryIntegrationTestSuite) TestDroneRoundTrip() {
	ctx := context.Background()
	principal := suite.principal("0xdrone1")

	drone, err := crew.NewDrone(0, principal, "UAS-FR-001", "quadcopter")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddDrone(ctx, drone))

	restored, err := suite.repository.GetDrone(ctx, principal)
	suite.Require().NoError(err)
	suite.Equal("UAS-FR-001", restored.DroneID())
	suite.Equal("quadcopter", restored.DroneType())
	suite.False(restored.IsDeleted())

	next, err := suite.repository.NextDroneIndex(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, next)
}

func TestCrewRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(CrewRepositoryIntegrationTestSuite))
}
