package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence
// behavior, in particular the atomicity of the courier claim.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.newPendingOrder(kernel.NewUUID(), time.Now().UTC())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	testOrder := suite.newPendingOrder(kernel.NewUUID(), time.Now().UTC())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.ClientID(), retrieved.ClientID())
	suite.Equal(testOrder.CommerceID(), retrieved.CommerceID())
	suite.Equal(testOrder.AddressID(), retrieved.AddressID())
	suite.True(testOrder.Subtotal().IsEqual(retrieved.Subtotal()))
	suite.True(testOrder.TaxAmount().IsEqual(retrieved.TaxAmount()))
	suite.True(testOrder.Total().IsEqual(retrieved.Total()))
	suite.InDelta(testOrder.TaxRate(), retrieved.TaxRate(), 0.0001)
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.Courier())
	suite.Len(retrieved.LineItems(), 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CompletedOrder_PersistsStatus() {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	testOrder := suite.newPendingOrder(kernel.NewUUID(), time.Now().UTC())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Assign(courierID))
	suite.Require().NoError(testOrder.Complete(courierID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, retrieved.Status())
	suite.Require().NotNil(retrieved.Courier())
	suite.True(retrieved.Courier().IsEqual(courierID))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	missing := suite.newPendingOrder(kernel.NewUUID(), time.Now().UTC())

	err := suite.repository.Update(ctx, missing)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByClient_ReturnsNewestFirst() {
	ctx := context.Background()
	clientID := kernel.NewUUID()
	base := time.Now().UTC().Add(-time.Hour)

	older := suite.newPendingOrder(clientID, base)
	newer := suite.newPendingOrder(clientID, base.Add(30*time.Minute))
	foreign := suite.newPendingOrder(kernel.NewUUID(), base.Add(15*time.Minute))

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	orders, err := suite.repository.GetByClient(ctx, clientID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(orders[0].ID().IsEqual(newer.ID()))
	suite.True(orders[1].ID().IsEqual(older.ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInPendingStatus_SkipsClaimedAndOrdersOldestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	second := suite.newPendingOrder(kernel.NewUUID(), base.Add(10*time.Minute))
	first := suite.newPendingOrder(kernel.NewUUID(), base)
	claimed := suite.newPendingOrder(kernel.NewUUID(), base.Add(5*time.Minute))
	suite.Require().NoError(claimed.Assign(kernel.NewUUID()))

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, claimed))

	pending, err := suite.repository.GetAllInPendingStatus(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(pending[0].ID().IsEqual(first.ID()))
	suite.True(pending[1].ID().IsEqual(second.ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetActiveByCourier() {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	active := suite.newPendingOrder(kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(active.Assign(courierID))

	done := suite.newPendingOrder(kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(done.Assign(courierID))
	suite.Require().NoError(done.Complete(courierID))

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, done))

	retrieved, err := suite.repository.GetActiveByCourier(ctx, courierID)
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(active.ID()))
	suite.Equal(order.InProgress, retrieved.Status())

	_, err = suite.repository.GetActiveByCourier(ctx, kernel.NewUUID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_PendingOrder_AssignsCourier() {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	testOrder := suite.newPendingOrder(kernel.NewUUID(), time.Now().UTC())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.Claim(ctx, testOrder.ID(), courierID)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, retrieved.Status())
	suite.Require().NotNil(retrieved.Courier())
	suite.True(retrieved.Courier().IsEqual(courierID))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_AlreadyClaimedOrder_ReturnsConflict() {
	ctx := context.Background()

	testOrder := suite.newPendingOrder(kernel.NewUUID(), time.Now().UTC())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Claim(ctx, testOrder.ID(), kernel.NewUUID()))

	err := suite.repository.Claim(ctx, testOrder.ID(), kernel.NewUUID())
	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	suite.tracker.AssertExpectations(suite.T())
}

// TestClaim_CourierWithActiveOrder_ReturnsConflict covers the inverse
// race: one courier claiming a second order while the first is still in
// progress. The partial unique index rejects the second row.
func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_CourierWithActiveOrder_ReturnsConflict() {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	first := suite.newPendingOrder(kernel.NewUUID(), time.Now().UTC())
	second := suite.newPendingOrder(kernel.NewUUID(), time.Now().UTC())
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.tracker.On("TrackAggregate", second.ID(), second).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.Require().NoError(suite.repository.Claim(ctx, first.ID(), courierID))

	err := suite.repository.Claim(ctx, second.ID(), courierID)
	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// The losing claim changed nothing: the second order is still pending.
	stored, err := suite.repository.Get(ctx, second.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, stored.Status())
	suite.Nil(stored.Courier())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Claim(ctx, kernel.NewUUID(), kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// TestClaim_ConcurrentCouriers_ExactlyOneWins races several couriers for
// the same pending order and verifies a single winner, with everyone else
// receiving a conflict.
func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_ConcurrentCouriers_ExactlyOneWins() {
	ctx := context.Background()
	const couriers = 5

	testOrder := suite.newPendingOrder(kernel.NewUUID(), time.Now().UTC())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	courierIDs := make([]kernel.UUID, couriers)
	for i := range courierIDs {
		courierIDs[i] = kernel.NewUUID()
	}

	results := make([]error, couriers)
	var wg sync.WaitGroup
	for i := range couriers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = suite.repository.Claim(ctx, testOrder.ID(), courierIDs[i])
		}(i)
	}
	wg.Wait()

	var winner *kernel.UUID
	conflicts := 0
	for i, err := range results {
		if err == nil {
			suite.Nil(winner, "more than one courier claimed the order")
			winner = &courierIDs[i]
			continue
		}

		var conflictErr *errs.ConflictError
		suite.Require().ErrorAs(err, &conflictErr)
		conflicts++
	}

	suite.Require().NotNil(winner, "no courier claimed the order")
	suite.Equal(couriers-1, conflicts)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, retrieved.Status())
	suite.Require().NotNil(retrieved.Courier())
	suite.True(retrieved.Courier().IsEqual(*winner))

	suite.tracker.AssertExpectations(suite.T())
}

// newPendingOrder builds a two-item pending order for a client with a
// fixed creation time so ordering assertions are deterministic.
func (suite *OrderRepositoryIntegrationTestSuite) newPendingOrder(
	clientID kernel.UUID, createdAt time.Time,
) *order.Order {
	itemA, err := order.NewLineItem(kernel.NewUUID(), 2)
	suite.Require().NoError(err)
	itemB, err := order.NewLineItem(kernel.NewUUID(), 1)
	suite.Require().NoError(err)

	subtotal, err := kernel.NewMoneyFromCents(1000)
	suite.Require().NoError(err)
	taxAmount, err := kernel.NewMoneyFromCents(180)
	suite.Require().NoError(err)
	total, err := kernel.NewMoneyFromCents(1180)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		clientID,
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.LineItem{itemA, itemB},
		subtotal,
		18,
		taxAmount,
		total,
		order.Pending,
		nil,
		createdAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
