package queries_test

import (
	"context"
	"testing"
	"time"

	"fastfeet/internal/adapters/out/postgres/deliverymanrepo"
	"fastfeet/internal/adapters/out/postgres/filerepo"
	"fastfeet/internal/adapters/out/postgres/orderrepo"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/deliveryman"
	"fastfeet/internal/core/domain/model/file"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/recipient"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data through the repositories.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetAllOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	handler         queries.GetAllOrdersQueryHandler
	orderRepo       *orderrepo.GormOrderRepository
	recipientRepo   *recipientrepo.GormRecipientRepository
	deliveryManRepo *deliverymanrepo.GormDeliveryManRepository
	fileRepo        *filerepo.GormFileRepository

	testRecipient   *recipient.Recipient
	testDeliveryMan *deliveryman.DeliveryMan
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&recipientrepo.RecipientDTO{},
		&deliverymanrepo.DeliveryManDTO{},
		&filerepo.FileDTO{},
		&orderrepo.OrderDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.recipientRepo = recipientrepo.NewGormRecipientRepository(db, &mockAggregateTracker{})
	suite.deliveryManRepo = deliverymanrepo.NewGormDeliveryManRepository(db, &mockAggregateTracker{})
	suite.fileRepo = filerepo.NewGormFileRepository(db, &mockAggregateTracker{})

	suite.testRecipient, err = recipient.NewRecipient(
		kernel.NewUUID(), "Jane Roe", "Baker Street",
		221, "", "London", "LDN", "NW1 6XE",
		time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.recipientRepo.Add(ctx, suite.testRecipient))

	suite.testDeliveryMan, err = deliveryman.NewDeliveryMan(
		kernel.NewUUID(), "John Doe", "john.doe@fastfeet.com",
		time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.deliveryManRepo.Add(ctx, suite.testDeliveryMan))
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) addOrder(product string, createdAt time.Time) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), suite.testRecipient.ID(), suite.testDeliveryMan.ID(), product, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetAllOrdersQuery())

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_ReturnsOrdersWithDetails() {
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	first := suite.addOrder("Standing desk", base)
	suite.addOrder("Office chair", base.Add(time.Hour))

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAllOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Sorted by creation time
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.Equal("Standing desk", result[0].Product)
	suite.Equal(order.Pending, result[0].Status)
	suite.Empty(result[0].SignatureURL)

	suite.Equal("Jane Roe", result[0].Recipient.Name)
	suite.Equal("Baker Street", result[0].Recipient.Street)
	suite.Equal(221, result[0].Recipient.Number)
	suite.Equal("NW1 6XE", result[0].Recipient.PostalCode)

	suite.Equal("John Doe", result[0].DeliveryMan.Name)
	suite.Equal("john.doe@fastfeet.com", result[0].DeliveryMan.Email)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_DerivesStatusFromTimestamps() {
	ctx := context.Background()
	dmID := suite.testDeliveryMan.ID()
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	inTransit := suite.addOrder("In transit", base)
	suite.Require().NoError(inTransit.PickUp(base.Add(time.Hour), dmID))
	suite.Require().NoError(suite.orderRepo.Update(ctx, inTransit))

	canceled := suite.addOrder("Canceled", base.Add(time.Minute))
	suite.Require().NoError(canceled.Cancel(base.Add(2 * time.Hour)))
	suite.Require().NoError(suite.orderRepo.Update(ctx, canceled))

	result, err := suite.handler.Handle(ctx, queries.NewGetAllOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(order.InTransit, result[0].Status)
	suite.NotNil(result[0].StartDate)
	suite.Equal(order.Canceled, result[1].Status)
	suite.NotNil(result[1].CanceledAt)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_DeliveredOrderCarriesSignatureURL() {
	ctx := context.Background()
	dmID := suite.testDeliveryMan.ID()
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	signature, err := file.NewFile(
		kernel.NewUUID(), "signature.png", "uploads/signature.png",
		"http://localhost:8080/files/signature.png", base,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.fileRepo.Add(ctx, signature))

	delivered := suite.addOrder("Delivered", base)
	suite.Require().NoError(delivered.PickUp(base.Add(time.Hour), dmID))
	suite.Require().NoError(delivered.Deliver(base.Add(3*time.Hour), dmID, signature.ID()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, delivered))

	result, err := suite.handler.Handle(ctx, queries.NewGetAllOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(order.Delivered, result[0].Status)
	suite.Equal("http://localhost:8080/files/signature.png", result[0].SignatureURL)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_ValidationError() {
	var query queries.GetAllOrdersQuery // not constructed properly

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestGetAllOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllOrdersQueryHandlerTestSuite))
}
