package queries_test

import (
	"context"
	"testing"
	"time"

	"fastfeet/internal/adapters/out/postgres/deliverymanrepo"
	"fastfeet/internal/adapters/out/postgres/orderrepo"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/deliveryman"
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

type GetPickupReportQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPickupReportQueryHandler
	orderRepo *orderrepo.GormOrderRepository

	testRecipient *recipient.Recipient
	busyDM        *deliveryman.DeliveryMan
	quietDM       *deliveryman.DeliveryMan
}

func (suite *GetPickupReportQueryHandlerTestSuite) SetupSuite() {
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
		&orderrepo.OrderDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPickupReportQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})

	recipientRepo := recipientrepo.NewGormRecipientRepository(db, &mockAggregateTracker{})
	suite.testRecipient, err = recipient.NewRecipient(
		kernel.NewUUID(), "Jane Roe", "Baker Street",
		221, "", "London", "LDN", "NW1 6XE",
		time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(recipientRepo.Add(ctx, suite.testRecipient))

	deliveryManRepo := deliverymanrepo.NewGormDeliveryManRepository(db, &mockAggregateTracker{})
	suite.busyDM, err = deliveryman.NewDeliveryMan(
		kernel.NewUUID(), "John Doe", "john.doe@fastfeet.com",
		time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(deliveryManRepo.Add(ctx, suite.busyDM))

	suite.quietDM, err = deliveryman.NewDeliveryMan(
		kernel.NewUUID(), "Alex Smith", "alex.smith@fastfeet.com",
		time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(deliveryManRepo.Add(ctx, suite.quietDM))
}

func (suite *GetPickupReportQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetPickupReportQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPickupReportQueryHandlerTestSuite) addPickedUpOrder(dm *deliveryman.DeliveryMan, pickedUpAt time.Time) {
	ctx := context.Background()
	o, err := order.NewOrder(
		kernel.NewUUID(), suite.testRecipient.ID(), dm.ID(),
		"Parcel", pickedUpAt.Add(-time.Hour),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	suite.Require().NoError(o.PickUp(pickedUpAt, dm.ID()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))
}

func (suite *GetPickupReportQueryHandlerTestSuite) TestHandle_CountsPickupsPerDeliveryMan() {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	for i := range order.MaxDailyPickups {
		suite.addPickedUpOrder(suite.busyDM, day.Add(time.Duration(9+i)*time.Hour))
	}
	suite.addPickedUpOrder(suite.quietDM, day.Add(10*time.Hour))
	suite.addPickedUpOrder(suite.quietDM, day.Add(11*time.Hour))
	suite.addPickedUpOrder(suite.quietDM, day.AddDate(0, 0, 1).Add(9*time.Hour))

	query, err := queries.NewGetPickupReportQuery(day.Add(20 * time.Hour))
	suite.Require().NoError(err)

	report, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(report, 2)
	suite.True(report[0].DeliveryManID.IsEqual(suite.busyDM.ID()))
	suite.Equal("John Doe", report[0].Name)
	suite.Equal(order.MaxDailyPickups, report[0].Pickups)
	suite.True(report[0].QuotaReached)

	suite.True(report[1].DeliveryManID.IsEqual(suite.quietDM.ID()))
	suite.Equal("Alex Smith", report[1].Name)
	suite.Equal(2, report[1].Pickups)
	suite.False(report[1].QuotaReached)
}

func (suite *GetPickupReportQueryHandlerTestSuite) TestHandle_DayWithoutPickups_ReturnsEmptySlice() {
	query, err := queries.NewGetPickupReportQuery(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	report, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(report)
}

func (suite *GetPickupReportQueryHandlerTestSuite) TestHandle_ValidationError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetPickupReportQuery{})
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetPickupReportQueryIsNotConstructed)
}

func TestGetPickupReportQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPickupReportQueryHandlerTestSuite))
}
