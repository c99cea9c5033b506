package exportorderrepo_test

import (
	"context"
	"testing"
	"time"

	"inventory/internal/adapters/out/postgres/exportorderrepo"
	"inventory/internal/core/domain/model/exportorder"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate interface{}) {
	m.Called(id, aggregate)
}

type ExportOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *exportorderrepo.GormExportOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *ExportOrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&exportorderrepo.ExportOrderDTO{}))
}

func (suite *ExportOrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE export_orders RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = exportorderrepo.NewGormExportOrderRepository(suite.db, suite.tracker)
}

func (suite *ExportOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ExportOrderRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	shippingDate := time.Now().UTC().AddDate(0, 0, 14).Truncate(time.Microsecond)
	testOrder := suite.newExportOrder(&shippingDate)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.True(testOrder.ID().IsAssigned())

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.CustomerID().IsEqual(testOrder.CustomerID()))
	suite.Equal(testOrder.Quantity(), loaded.Quantity())
	suite.Equal("12 Harbour Rd", loaded.ShippingAddress())
	suite.Equal(exportorder.ShippingPending, loaded.ShippingStatus())
	suite.Equal(order.StatusPending, loaded.Status())
	suite.Require().NotNil(loaded.ShippingDate())
	suite.WithinDuration(shippingDate, *loaded.ShippingDate(), time.Second)
	suite.tracker.AssertExpectations(suite.T())
}

// A nil shipping date must survive the round trip as NULL, not a zero time.
func (suite *ExportOrderRepositoryIntegrationTestSuite) TestAdd_NilShippingDate() {
	ctx := context.Background()
	testOrder := suite.newExportOrder(nil)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Nil(loaded.ShippingDate())
}

func (suite *ExportOrderRepositoryIntegrationTestSuite) TestUpdate_StatusDimensions() {
	ctx := context.Background()
	testOrder := suite.newExportOrder(nil)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	created, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(testOrder.ChangeShippingStatus(exportorder.ShippingInTransit))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(exportorder.ShippingInTransit, loaded.ShippingStatus())
	suite.Equal(order.StatusPending, loaded.Status(), "order status dimension must be untouched")
	suite.True(loaded.UpdatedAt().After(created.UpdatedAt()),
		"updated_at must advance on a status change")
}

func (suite *ExportOrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()
	missing, err := kernel.NewID(31337)
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, missing)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ExportOrderRepositoryIntegrationTestSuite) TestGetAll_OrderedByIdentity() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, suite.newExportOrder(nil)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newExportOrder(nil)))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Less(orders[0].ID().Int64(), orders[1].ID().Int64())
}

func (suite *ExportOrderRepositoryIntegrationTestSuite) newExportOrder(shippingDate *time.Time) *exportorder.ExportOrder {
	customerID, err := kernel.NewID(4)
	suite.Require().NoError(err)
	productID, err := kernel.NewID(9)
	suite.Require().NoError(err)
	subtotal, err := kernel.MoneyFromFloat(320)
	suite.Require().NoError(err)
	totalAmount, err := kernel.MoneyFromFloat(352)
	suite.Require().NoError(err)

	eo, err := exportorder.NewExportOrder(
		customerID, productID, 16, subtotal, totalAmount,
		shippingDate, "12 Harbour Rd", exportorder.ShippingPending, order.StatusPending,
	)
	suite.Require().NoError(err)
	return eo
}

func TestExportOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ExportOrderRepositoryIntegrationTestSuite))
}
