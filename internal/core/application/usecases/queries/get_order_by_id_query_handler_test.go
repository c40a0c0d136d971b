package queries_test

import (
	"context"
	"testing"
	"time"

	"farmmarket/internal/adapters/out/postgres/orderrepo"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderByIDQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderByIDQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderByIDQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderByIDQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderByIDQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_ReturnsOrderWithItems() {
	ctx := context.Background()
	orderDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	farmerID := kernel.NewUUID()

	o, err := order.NewOrder(kernel.NewUUID(), orderDate, order.Pending, farmerID, nil, 45.0)
	suite.Require().NoError(err)
	item1, _ := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 3, 5.0)
	item2, _ := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, 15.0)
	suite.Require().NoError(o.AddItem(item1))
	suite.Require().NoError(o.AddItem(item2))
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	query, err := queries.NewGetOrderByIDQuery(o.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(result.Order.ID.IsEqual(o.ID()))
	suite.Equal(order.Pending, result.Order.Status)
	suite.True(result.Order.FarmerID.IsEqual(farmerID))
	suite.Nil(result.Order.AdminID)
	suite.Equal(45.0, result.Order.TotalPrice)
	suite.Require().Len(result.Items, 2)

	itemsByID := make(map[kernel.UUID]queries.OrderItemResponse)
	for _, it := range result.Items {
		itemsByID[it.ID] = it
	}
	loaded1, ok := itemsByID[item1.ID()]
	suite.Require().True(ok)
	suite.Equal(3, loaded1.Quantity)
	suite.Equal(15.0, loaded1.Price)
	loaded2, ok := itemsByID[item2.ID()]
	suite.Require().True(ok)
	suite.Equal(2, loaded2.Quantity)
	suite.Equal(30.0, loaded2.Price)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_OrderWithAdmin_MapsAdminID() {
	ctx := context.Background()
	adminID := kernel.NewUUID()

	o, err := order.NewOrder(kernel.NewUUID(), time.Now(), order.Delivered, kernel.NewUUID(), &adminID, 12.0)
	suite.Require().NoError(err)
	item, _ := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, 12.0)
	suite.Require().NoError(o.AddItem(item))
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	query, _ := queries.NewGetOrderByIDQuery(o.ID())

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result.Order.AdminID)
	suite.True(result.Order.AdminID.IsEqual(adminID))
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, _ := queries.NewGetOrderByIDQuery(kernel.NewUUID())

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Empty(result.Items)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderByIDQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderByIDQuery constructor")
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_RepeatedReads_ReturnIdenticalData() {
	ctx := context.Background()
	o, err := order.NewOrder(kernel.NewUUID(), time.Now(), order.Pending, kernel.NewUUID(), nil, 9.0)
	suite.Require().NoError(err)
	item, _ := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, 9.0)
	suite.Require().NoError(o.AddItem(item))
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	query, _ := queries.NewGetOrderByIDQuery(o.ID())

	first, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	second, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func TestGetOrderByIDQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderByIDQueryHandlerTestSuite))
}
