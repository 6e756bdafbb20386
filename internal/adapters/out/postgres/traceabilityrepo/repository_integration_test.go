package traceabilityrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/traceabilityrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/traceability"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type TraceabilityRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *traceabilityrepo.GormTraceabilityRepository
	tracker    *MockAggregateTracker
	actor      kernel.Actor
}

func (suite *TraceabilityRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&traceabilityrepo.RecordDTO{}))

	suite.actor, err = kernel.NewActor(kernel.NewUUID(), "Green Acres", "farmer")
	suite.Require().NoError(err)
}

func (suite *TraceabilityRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE traceability_records").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = traceabilityrepo.NewGormTraceabilityRepository(suite.db, suite.tracker)
}

func (suite *TraceabilityRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TraceabilityRepositoryIntegrationTestSuite) TestAppend_StoresAllFields() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	record := suite.newRecord(&orderID)
	suite.tracker.On("TrackAggregate", record.ID(), record).Return().Once()

	suite.Require().NoError(suite.repository.Append(ctx, record))

	var dto traceabilityrepo.RecordDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", record.ID().Bytes()).Error)
	suite.Equal(record.ProductID().Bytes(), dto.ProductID)
	suite.Require().NotNil(dto.OrderID)
	suite.Equal(orderID.Bytes(), *dto.OrderID)
	suite.Equal("processing", dto.Stage)
	suite.Equal("Green Acres", dto.ActorName)
	suite.Equal("farmer", dto.ActorRole)
	suite.Equal("Packhouse", dto.LocationName)
	suite.Equal("confirmed", dto.Action)
	suite.Equal("pending", dto.VerificationStatus)
	suite.True(record.Timestamp().Equal(dto.Timestamp))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TraceabilityRepositoryIntegrationTestSuite) TestAppend_WithoutOrderStoresNull() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	record := suite.newRecord(nil)

	suite.Require().NoError(suite.repository.Append(ctx, record))

	var nullOrders int64
	suite.Require().NoError(suite.db.Model(&traceabilityrepo.RecordDTO{}).
		Where("order_id IS NULL").Count(&nullOrders).Error)
	suite.Equal(int64(1), nullOrders)
}

func (suite *TraceabilityRepositoryIntegrationTestSuite) TestAppend_DuplicateIDFails() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	record := suite.newRecord(nil)

	suite.Require().NoError(suite.repository.Append(ctx, record))
	suite.Require().Error(suite.repository.Append(ctx, record))
}

func (suite *TraceabilityRepositoryIntegrationTestSuite) TestAppend_NotConstructedRecordFails() {
	err := suite.repository.Append(context.Background(), &traceability.Record{})

	suite.Require().ErrorIs(err, traceability.ErrRecordIsNotConstructed)
}

func (suite *TraceabilityRepositoryIntegrationTestSuite) newRecord(orderID *kernel.UUID) *traceability.Record {
	location, err := traceability.NewLocation("Packhouse", "Thika Road")
	suite.Require().NoError(err)

	record, err := traceability.NewRecord(traceability.Entry{
		ProductID:   kernel.NewUUID(),
		OrderID:     orderID,
		Stage:       traceability.Processing,
		Actor:       suite.actor,
		Location:    location,
		Action:      "confirmed",
		Description: "Order confirmed by seller",
	}, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return record
}

func TestTraceabilityRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TraceabilityRepositoryIntegrationTestSuite))
}
