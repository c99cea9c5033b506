package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "inventory/internal/adapters/out/postgres"
	"inventory/internal/adapters/out/postgres/categoryrepo"
	"inventory/internal/adapters/out/postgres/customerrepo"
	"inventory/internal/adapters/out/postgres/exportorderrepo"
	"inventory/internal/adapters/out/postgres/orderrepo"
	"inventory/internal/adapters/out/postgres/productrepo"
	"inventory/internal/adapters/out/postgres/supplierrepo"
	"inventory/internal/core/domain/model/exportorder"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&exportorderrepo.ExportOrderDTO{},
		&productrepo.ProductDTO{},
		&categoryrepo.CategoryDTO{},
		&supplierrepo.SupplierDTO{},
		&customerrepo.CustomerDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, export_orders, products, categories, suppliers, customers RESTART IDENTITY",
	).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ExportOrderRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.CategoryRepository())
	suite.NotNil(uow1.SupplierRepository())
	suite.NotNil(uow1.CustomerRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated begin must not open a nested transaction.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "commit without active transaction should fail")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "rollback without active transaction should fail")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossInstances() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Visible within the transaction before commit.
	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite)
	testExportOrder := createTestExportOrder(suite)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.ExportOrderRepository().Add(ctx, testExportOrder)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "order should not exist after rollback")

	_, err = newUow.ExportOrderRepository().Get(ctx, testExportOrder.ID())
	suite.Require().Error(err, "export order should not exist after rollback")

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMultiRepository_SingleTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite)
	testExportOrder := createTestExportOrder(suite)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.ExportOrderRepository().Add(ctx, testExportOrder)
	suite.Require().NoError(err)

	err = testOrder.ChangeStatus(order.StatusCompleted)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusCompleted, retrievedOrder.Status())

	retrievedExportOrder, err := newUow.ExportOrderRepository().Get(ctx, testExportOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(exportorder.ShippingPending, retrievedExportOrder.ShippingStatus())
}

func createTestOrder(suite *UnitOfWorkIntegrationTestSuite) *order.Order {
	supplierID, err := kernel.NewID(1)
	suite.Require().NoError(err)
	productID, err := kernel.NewID(2)
	suite.Require().NoError(err)
	subtotal, err := kernel.MoneyFromFloat(100)
	suite.Require().NoError(err)
	totalAmount, err := kernel.MoneyFromFloat(110)
	suite.Require().NoError(err)

	o, err := order.NewOrder(supplierID, productID, 10, subtotal, totalAmount, order.StatusPending)
	suite.Require().NoError(err)
	return o
}

func createTestExportOrder(suite *UnitOfWorkIntegrationTestSuite) *exportorder.ExportOrder {
	customerID, err := kernel.NewID(1)
	suite.Require().NoError(err)
	productID, err := kernel.NewID(2)
	suite.Require().NoError(err)
	subtotal, err := kernel.MoneyFromFloat(200)
	suite.Require().NoError(err)
	totalAmount, err := kernel.MoneyFromFloat(220)
	suite.Require().NoError(err)

	shippingDate := time.Now().UTC().AddDate(0, 0, 7)
	eo, err := exportorder.NewExportOrder(
		customerID, productID, 20, subtotal, totalAmount,
		&shippingDate, "12 Harbour Rd", exportorder.ShippingPending, order.StatusPending,
	)
	suite.Require().NoError(err)
	return eo
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
