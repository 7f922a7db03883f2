package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fastfeet/internal/adapters/out/postgres"
	"fastfeet/internal/adapters/out/postgres/deliverymanrepo"
	"fastfeet/internal/adapters/out/postgres/filerepo"
	"fastfeet/internal/adapters/out/postgres/orderrepo"
	"fastfeet/internal/adapters/out/postgres/problemrepo"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/core/domain/model/deliveryman"
	"fastfeet/internal/core/domain/model/file"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/problem"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&recipientrepo.RecipientDTO{},
		&deliverymanrepo.DeliveryManDTO{},
		&filerepo.FileDTO{},
		&orderrepo.OrderDTO{},
		&problemrepo.DeliveryProblemDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, recipients, delivery_men, files, delivery_problems").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createRecipient() *recipient.Recipient {
	rcp, err := recipient.NewRecipient(
		kernel.NewUUID(), "Jane Roe", "Baker Street",
		221, "", "London", "LDN", "NW1 6XE",
		time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return rcp
}

func (suite *UnitOfWorkIntegrationTestSuite) createDeliveryMan() *deliveryman.DeliveryMan {
	dm, err := deliveryman.NewDeliveryMan(
		kernel.NewUUID(), "John Doe", "john.doe@fastfeet.com",
		time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return dm
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrder(recipientID, deliveryManID kernel.UUID) *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(), recipientID, deliveryManID, "Standing desk",
		time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows(model any) int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	return count
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.RecipientRepository(), "First instance should provide recipient repository")
	suite.NotNil(uow1.DeliveryManRepository(), "First instance should provide delivery man repository")
	suite.NotNil(uow1.DeliveryProblemRepository(), "First instance should provide problem repository")
	suite.NotNil(uow1.FileRepository(), "First instance should provide file repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_Commit_PersistsAcrossRepositories verifies writes through
// several repositories of one unit of work land in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Commit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	rcp := suite.createRecipient()
	dm := suite.createDeliveryMan()
	ord := suite.createOrder(rcp.ID(), dm.ID())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RecipientRepository().Add(ctx, rcp))
	suite.Require().NoError(uow.DeliveryManRepository().Add(ctx, dm))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.countRows(&recipientrepo.RecipientDTO{}))
	suite.Equal(int64(1), suite.countRows(&deliverymanrepo.DeliveryManDTO{}))
	suite.Equal(int64(1), suite.countRows(&orderrepo.OrderDTO{}))
}

// TestUnitOfWork_Rollback_DiscardsChanges verifies rollback leaves no rows behind.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Rollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	rcp := suite.createRecipient()
	dm := suite.createDeliveryMan()
	ord := suite.createOrder(rcp.ID(), dm.ID())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RecipientRepository().Add(ctx, rcp))
	suite.Require().NoError(uow.DeliveryManRepository().Add(ctx, dm))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countRows(&recipientrepo.RecipientDTO{}))
	suite.Equal(int64(0), suite.countRows(&deliverymanrepo.DeliveryManDTO{}))
	suite.Equal(int64(0), suite.countRows(&orderrepo.OrderDTO{}))
}

// TestUnitOfWork_RollbackAfterCommit_IsNoOp verifies the deferred rollback
// used by the command handlers is harmless after a successful commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackAfterCommit_IsNoOp() {
	ctx := context.Background()
	uow := suite.factory.Create()

	rcp := suite.createRecipient()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RecipientRepository().Add(ctx, rcp))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(1), suite.countRows(&recipientrepo.RecipientDTO{}))
}

// TestUnitOfWork_FileAndProblemRepositories verifies the remaining
// repositories round-trip their aggregates within a transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_FileAndProblemRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	dm := suite.createDeliveryMan()
	ord := suite.createOrder(kernel.NewUUID(), dm.ID())
	suite.Require().NoError(ord.PickUp(time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC), dm.ID()))

	signature, err := file.NewFile(
		kernel.NewUUID(), "signature.png", "uploads/signature.png",
		"http://localhost:8080/files/signature.png",
		time.Date(2024, 3, 10, 13, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	report, err := problem.NewDeliveryProblem(
		kernel.NewUUID(), ord.ID(), "recipient not at home",
		time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryManRepository().Add(ctx, dm))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))
	suite.Require().NoError(uow.FileRepository().Add(ctx, signature))
	suite.Require().NoError(uow.DeliveryProblemRepository().Add(ctx, report))
	suite.Require().NoError(uow.Commit(ctx))

	loadedFile, err := suite.factory.Create().FileRepository().Get(ctx, signature.ID())
	suite.Require().NoError(err)
	suite.Equal("signature.png", loadedFile.Name())
	suite.Equal("uploads/signature.png", loadedFile.Path())

	loadedProblem, err := suite.factory.Create().DeliveryProblemRepository().Get(ctx, report.ID())
	suite.Require().NoError(err)
	suite.True(loadedProblem.OrderID().IsEqual(ord.ID()))
	suite.Equal("recipient not at home", loadedProblem.Description())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
