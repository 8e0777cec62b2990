package impl

import (
	"context"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	tx        *txFixture
	orders    *mockRepo.MockOrderRepository
	publisher *mockService.MockEventPublisher
	cache     *mockService.MockProductCache
	service   usecase.OrderUsecase
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	f := &orderFixture{
		tx:        newTxFixture(t),
		orders:    mockRepo.NewMockOrderRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
		cache:     mockService.NewMockProductCache(t),
	}
	f.service = NewOrderService(OrderServiceParams{
		TxManager: f.tx.manager,
		OrderRepo: f.orders,
		Publisher: f.publisher,
		Cache:     f.cache,
		Logger:    newDiscardLogger(),
	})

	return f
}

func TestSanitizeOrderListQuery(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.ListOrdersInput
		want  entity.OrderListQuery
	}{
		{
			name:  "defaults",
			input: usecase.ListOrdersInput{UserID: 1},
			want:  entity.OrderListQuery{UserID: 1, Page: 1, Limit: 10, Sort: entity.OrderSortCreatedAt, Descending: true},
		},
		{
			name:  "limit capped and ascending",
			input: usecase.ListOrdersInput{UserID: 1, Page: 3, Limit: 500, Sort: "total_amount", Order: "asc"},
			want:  entity.OrderListQuery{UserID: 1, Page: 3, Limit: 100, Sort: entity.OrderSortTotalAmount, Descending: false},
		},
		{
			name:  "injection attempt falls back",
			input: usecase.ListOrdersInput{UserID: 1, Page: -2, Limit: 5, Sort: "id; DROP TABLE orders", Order: "sideways"},
			want:  entity.OrderListQuery{UserID: 1, Page: 1, Limit: 5, Sort: entity.OrderSortCreatedAt, Descending: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeOrderListQuery(tt.input))
		})
	}
}

func TestOrderService_List(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	want := entity.OrderListQuery{UserID: 4, Page: 2, Limit: 10, Sort: entity.OrderSortStatus, Descending: true}
	f.orders.EXPECT().ListByUser(ctx, want).Return([]*entity.Order{{ID: 1}}, nil)

	page, err := f.service.List(ctx, usecase.ListOrdersInput{UserID: 4, Page: 2, Sort: "STATUS"})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Len(t, page.Orders, 1)
}

func TestOrderService_Get_OtherUsersOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.orders.EXPECT().FindByIDForUser(ctx, uint64(5), uint64(1)).Return(nil, repository.ErrOrderNotFound)

	_, err := f.service.Get(ctx, 1, 5)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_Create(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()

		inputs := []usecase.CreateOrderInput{
			{UserID: 1, ProductID: 0, Quantity: 1, ShippingAddress: "1 Main Street"},
			{UserID: 1, ProductID: 2, Quantity: 0, ShippingAddress: "1 Main Street"},
			{UserID: 1, ProductID: 2, Quantity: 1, ShippingAddress: "abc"},
			{UserID: 1, ProductID: 2, Quantity: 1, ShippingAddress: strings.Repeat("a", 256)},
		}
		for _, input := range inputs {
			_, err := f.service.Create(ctx, input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderInput)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		f.tx.expectExecute(ctx)
		f.tx.products.EXPECT().FindByIDForUpdate(ctx, uint64(2)).Return(&entity.Product{ID: 2, Stock: 1}, nil)
		f.tx.products.EXPECT().DecreaseStock(ctx, uint64(2), 3).Return(repository.ErrInsufficientStock)

		_, err := f.service.Create(ctx, usecase.CreateOrderInput{UserID: 1, ProductID: 2, Quantity: 3, ShippingAddress: "1 Main Street"})

		assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
		f.tx.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("success computes total and publishes", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
		f.tx.expectExecute(ctx)
		f.tx.products.EXPECT().FindByIDForUpdate(ctx, uint64(2)).
			Return(&entity.Product{ID: 2, Stock: 10, Price: decimal.RequireFromString("19.99")}, nil)
		f.tx.products.EXPECT().DecreaseStock(ctx, uint64(2), 3).Return(nil)
		f.tx.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(_ context.Context, order *entity.Order) { order.ID = 77 }).
			Return(nil)
		f.cache.EXPECT().Invalidate(ctx, uint64(2)).Return(nil)
		f.publisher.EXPECT().PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == service.OrderEventPlaced &&
				e.OrderID == 77 &&
				e.RequestID == "req-1" &&
				e.TotalAmount == "59.97" &&
				e.EventID != ""
		})).Return(nil)

		order, err := f.service.Create(ctx, usecase.CreateOrderInput{UserID: 1, ProductID: 2, Quantity: 3, ShippingAddress: " 1 Main Street "})

		require.NoError(t, err)
		assert.Equal(t, uint64(77), order.ID)
		assert.Equal(t, entity.OrderStatusPending, order.Status)
		assert.Equal(t, "1 Main Street", order.ShippingAddress)
		assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("59.97")))
	})

	t.Run("publish and cache failures do not fail the order", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		f.tx.expectExecute(ctx)
		f.tx.products.EXPECT().FindByIDForUpdate(ctx, uint64(2)).Return(&entity.Product{ID: 2, Stock: 10, Price: decimal.NewFromInt(5)}, nil)
		f.tx.products.EXPECT().DecreaseStock(ctx, uint64(2), 1).Return(nil)
		f.tx.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		f.cache.EXPECT().Invalidate(ctx, uint64(2)).Return(errors.New("redis down"))
		f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

		_, err := f.service.Create(ctx, usecase.CreateOrderInput{UserID: 1, ProductID: 2, Quantity: 1, ShippingAddress: "1 Main Street"})

		require.NoError(t, err)
	})
}

func TestOrderService_Checkout(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		f.tx.expectExecute(ctx)
		f.tx.carts.EXPECT().ListByUser(ctx, uint64(1)).Return([]*entity.CartItem{}, nil)

		_, err := f.service.Checkout(ctx, 1, "1 Main Street")

		assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	})

	t.Run("second line out of stock aborts everything", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		f.tx.expectExecute(ctx)
		f.tx.carts.EXPECT().ListByUser(ctx, uint64(1)).Return([]*entity.CartItem{
			{ProductID: 2, Quantity: 1},
			{ProductID: 3, Quantity: 4},
		}, nil)
		f.tx.products.EXPECT().FindByIDForUpdate(ctx, uint64(2)).Return(&entity.Product{ID: 2, Price: decimal.NewFromInt(10)}, nil)
		f.tx.products.EXPECT().DecreaseStock(ctx, uint64(2), 1).Return(nil)
		f.tx.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
		f.tx.products.EXPECT().FindByIDForUpdate(ctx, uint64(3)).Return(&entity.Product{ID: 3, Price: decimal.NewFromInt(10)}, nil)
		f.tx.products.EXPECT().DecreaseStock(ctx, uint64(3), 4).Return(repository.ErrInsufficientStock)

		_, err := f.service.Checkout(ctx, 1, "1 Main Street")

		assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
		f.tx.carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
		f.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
		f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})

	t.Run("success locks products in id order", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		f.tx.expectExecute(ctx)
		f.tx.carts.EXPECT().ListByUser(ctx, uint64(1)).Return([]*entity.CartItem{
			{ProductID: 3, Quantity: 1},
			{ProductID: 2, Quantity: 2},
		}, nil)
		mock.InOrder(
			f.tx.products.EXPECT().FindByIDForUpdate(ctx, uint64(2)).Return(&entity.Product{ID: 2, Price: decimal.RequireFromString("2.50")}, nil).Call,
			f.tx.products.EXPECT().DecreaseStock(ctx, uint64(2), 2).Return(nil).Call,
			f.tx.products.EXPECT().FindByIDForUpdate(ctx, uint64(3)).Return(&entity.Product{ID: 3, Price: decimal.RequireFromString("10.00")}, nil).Call,
			f.tx.products.EXPECT().DecreaseStock(ctx, uint64(3), 1).Return(nil).Call,
		)

		nextID := uint64(100)
		f.tx.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(_ context.Context, order *entity.Order) {
				nextID++
				order.ID = nextID
			}).
			Return(nil).Twice()
		f.tx.carts.EXPECT().Clear(ctx, uint64(1)).Return(nil)
		f.cache.EXPECT().Invalidate(ctx, uint64(2)).Return(nil)
		f.cache.EXPECT().Invalidate(ctx, uint64(3)).Return(nil)
		f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil).Twice()

		out, err := f.service.Checkout(ctx, 1, "1 Main Street")

		require.NoError(t, err)
		assert.Equal(t, []uint64{101, 102}, out.OrderIDs)
		assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("15.00")))
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		f := newOrderFixture(t)

		_, err := f.service.UpdateStatus(context.Background(), 1, 2, "lost")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
	})

	t.Run("order of another user", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		f.tx.expectExecute(ctx)
		f.tx.orders.EXPECT().FindByIDForUserForUpdate(ctx, uint64(2), uint64(1)).Return(nil, repository.ErrOrderNotFound)

		_, err := f.service.UpdateStatus(ctx, 1, 2, "shipped")

		assert.ErrorIs(t, err, domainerrors.ErrOrderUpdateForbidden)
	})

	t.Run("cancel restocks", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		f.tx.expectExecute(ctx)
		f.tx.orders.EXPECT().FindByIDForUserForUpdate(ctx, uint64(2), uint64(1)).
			Return(&entity.Order{ID: 2, UserID: 1, ProductID: 7, Quantity: 3, Status: entity.OrderStatusPending}, nil)
		f.tx.products.EXPECT().IncreaseStock(ctx, uint64(7), 3).Return(nil)
		f.tx.orders.EXPECT().UpdateStatus(ctx, uint64(2), entity.OrderStatusCancelled).Return(nil)
		f.cache.EXPECT().Invalidate(ctx, uint64(7)).Return(nil)
		f.publisher.EXPECT().PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == service.OrderEventStatusChanged && e.Status == "cancelled"
		})).Return(nil)

		order, err := f.service.UpdateStatus(ctx, 1, 2, "Cancelled")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, order.Status)
	})

	t.Run("cancelling twice does not restock", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		f.tx.expectExecute(ctx)
		f.tx.orders.EXPECT().FindByIDForUserForUpdate(ctx, uint64(2), uint64(1)).
			Return(&entity.Order{ID: 2, ProductID: 7, Quantity: 3, Status: entity.OrderStatusCancelled}, nil)
		f.tx.orders.EXPECT().UpdateStatus(ctx, uint64(2), entity.OrderStatusCancelled).Return(nil)

		_, err := f.service.UpdateStatus(ctx, 1, 2, "cancelled")

		require.NoError(t, err)
		f.tx.products.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
		f.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
		f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})

	t.Run("shipping keeps cached stock", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		f.tx.expectExecute(ctx)
		f.tx.orders.EXPECT().FindByIDForUserForUpdate(ctx, uint64(2), uint64(1)).
			Return(&entity.Order{ID: 2, ProductID: 7, Quantity: 3, Status: entity.OrderStatusPending}, nil)
		f.tx.orders.EXPECT().UpdateStatus(ctx, uint64(2), entity.OrderStatusShipped).Return(nil)
		f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

		_, err := f.service.UpdateStatus(ctx, 1, 2, "shipped")

		require.NoError(t, err)
		f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})

	t.Run("reviving a cancelled order needs stock", func(t *testing.T) {
		f := newOrderFixture(t)
		ctx := context.Background()
		f.tx.expectExecute(ctx)
		f.tx.orders.EXPECT().FindByIDForUserForUpdate(ctx, uint64(2), uint64(1)).
			Return(&entity.Order{ID: 2, ProductID: 7, Quantity: 3, Status: entity.OrderStatusCancelled}, nil)
		f.tx.products.EXPECT().DecreaseStock(ctx, uint64(7), 3).Return(repository.ErrInsufficientStock)

		_, err := f.service.UpdateStatus(ctx, 1, 2, "pending")

		assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	})
}
