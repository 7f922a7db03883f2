package commands_test

import (
	"context"
	"testing"
	"time"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/deliveryman"
	"fastfeet/internal/core/domain/model/file"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/problem"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) CountPickupsOnDay(ctx context.Context, deliveryManID kernel.UUID, day time.Time) (int, error) {
	args := m.Called(ctx, deliveryManID, day)
	return args.Int(0), args.Error(1)
}

type MockRecipientRepository struct{ mock.Mock }

func (m *MockRecipientRepository) Add(ctx context.Context, r *recipient.Recipient) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipientRepository) Update(ctx context.Context, r *recipient.Recipient) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipientRepository) Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipient.Recipient), args.Error(1)
}

func (m *MockRecipientRepository) FindByIdentity(ctx context.Context, name, postalCode string, number int) (*recipient.Recipient, error) {
	args := m.Called(ctx, name, postalCode, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipient.Recipient), args.Error(1)
}

type MockDeliveryManRepository struct{ mock.Mock }

func (m *MockDeliveryManRepository) Add(ctx context.Context, dm *deliveryman.DeliveryMan) error {
	args := m.Called(ctx, dm)
	return args.Error(0)
}

func (m *MockDeliveryManRepository) Update(ctx context.Context, dm *deliveryman.DeliveryMan) error {
	args := m.Called(ctx, dm)
	return args.Error(0)
}

func (m *MockDeliveryManRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryman.DeliveryMan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryman.DeliveryMan), args.Error(1)
}

func (m *MockDeliveryManRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeliveryManRepository) FindByEmail(ctx context.Context, email string) (*deliveryman.DeliveryMan, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryman.DeliveryMan), args.Error(1)
}

type MockProblemRepository struct{ mock.Mock }

func (m *MockProblemRepository) Add(ctx context.Context, p *problem.DeliveryProblem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProblemRepository) Get(ctx context.Context, id kernel.UUID) (*problem.DeliveryProblem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*problem.DeliveryProblem), args.Error(1)
}

type MockFileRepository struct{ mock.Mock }

func (m *MockFileRepository) Add(ctx context.Context, f *file.File) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFileRepository) Get(ctx context.Context, id kernel.UUID) (*file.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*file.File), args.Error(1)
}

type MockNotificationQueue struct{ mock.Mock }

func (m *MockNotificationQueue) Enqueue(ctx context.Context, n notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

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

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RecipientRepository() ports.RecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipientRepository)
}

func (m *MockUoW) DeliveryManRepository() ports.DeliveryManRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryManRepository)
}

func (m *MockUoW) DeliveryProblemRepository() ports.DeliveryProblemRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryProblemRepository)
}

func (m *MockUoW) FileRepository() ports.FileRepository {
	args := m.Called()
	return args.Get(0).(ports.FileRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRecipientUoW struct{ mock.Mock }

func (m *MockRecipientUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecipientUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecipientUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecipientUoW) RecipientRepository() ports.RecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipientRepository)
}

type MockRecipientUoWFactory struct{ mock.Mock }

func (m *MockRecipientUoWFactory) Create() commands.RecipientUoW {
	args := m.Called()
	return args.Get(0).(commands.RecipientUoW)
}

type MockDeliveryManUoW struct{ mock.Mock }

func (m *MockDeliveryManUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryManUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryManUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryManUoW) DeliveryManRepository() ports.DeliveryManRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryManRepository)
}

func (m *MockDeliveryManUoW) FileRepository() ports.FileRepository {
	args := m.Called()
	return args.Get(0).(ports.FileRepository)
}

type MockDeliveryManUoWFactory struct{ mock.Mock }

func (m *MockDeliveryManUoWFactory) Create() commands.DeliveryManUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryManUoW)
}

type MockFileUoW struct{ mock.Mock }

func (m *MockFileUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFileUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFileUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFileUoW) FileRepository() ports.FileRepository {
	args := m.Called()
	return args.Get(0).(ports.FileRepository)
}

type MockFileUoWFactory struct{ mock.Mock }

func (m *MockFileUoWFactory) Create() commands.FileUoW {
	args := m.Called()
	return args.Get(0).(commands.FileUoW)
}

func buildRecipient(t *testing.T) *recipient.Recipient {
	t.Helper()
	rcp, err := recipient.NewRecipient(
		kernel.NewUUID(), "Jane Roe", "Baker Street",
		221, "", "London", "LDN", "NW1 6XE",
		time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return rcp
}

func buildDeliveryMan(t *testing.T, email string) *deliveryman.DeliveryMan {
	t.Helper()
	dm, err := deliveryman.NewDeliveryMan(
		kernel.NewUUID(), "John Doe", email,
		time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return dm
}

func buildPendingOrder(t *testing.T, recipientID, deliveryManID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), recipientID, deliveryManID, "Standing desk",
		time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func buildInTransitOrder(t *testing.T, recipientID, deliveryManID kernel.UUID) *order.Order {
	t.Helper()
	o := buildPendingOrder(t, recipientID, deliveryManID)
	require.NoError(t, o.PickUp(time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC), deliveryManID))
	return o
}

func buildFile(t *testing.T) *file.File {
	t.Helper()
	f, err := file.NewFile(
		kernel.NewUUID(), "signature.png", "uploads/signature.png",
		"http://localhost:8080/files/signature.png",
		time.Date(2024, 3, 10, 13, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return f
}

func buildProblem(t *testing.T, orderID kernel.UUID) *problem.DeliveryProblem {
	t.Helper()
	p, err := problem.NewDeliveryProblem(
		kernel.NewUUID(), orderID, "package damaged in transit",
		time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}

func enqueuedKind(kind notification.Kind) interface{} {
	return mock.MatchedBy(func(n notification.Notification) bool {
		return n.Kind() == kind
	})
}
