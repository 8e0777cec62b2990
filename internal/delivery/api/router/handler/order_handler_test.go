package handler_test

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartHandler(t *testing.T) {
	t.Run("cart requires a token", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/cart", "", "")

		requireError(t, rec, http.StatusUnauthorized, "NO_TOKEN")
	})

	t.Run("lists the user's items", func(t *testing.T) {
		f := newAPIFixture(t)
		f.cart.EXPECT().List(mock.Anything, customer.ID).Return([]*entity.CartItem{
			{ID: 1, UserID: customer.ID, ProductID: 3, Quantity: 2, Name: "Desk lamp", Price: decimal.RequireFromString("19.99"), Stock: 5},
		}, nil)

		rec := f.do(http.MethodGet, "/api/cart", "", customerToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"product_id":3`)
		assert.NotContains(t, rec.Body.String(), "user_id")
	})

	for _, path := range []string{"/api/cart", "/api/cart/add"} {
		t.Run("add via "+path, func(t *testing.T) {
			f := newAPIFixture(t)
			f.cart.EXPECT().Add(mock.Anything, customer.ID, uint64(3), 2).Return(nil)

			rec := f.do(http.MethodPost, path, `{"productId":3,"quantity":2}`, customerToken)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}

	t.Run("add rejects zero quantity", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/cart/add", `{"productId":3,"quantity":0}`, customerToken)

		requireError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("add reports insufficient stock", func(t *testing.T) {
		f := newAPIFixture(t)
		f.cart.EXPECT().Add(mock.Anything, customer.ID, uint64(3), 50).
			Return(errors.WithStack(domainerrors.ErrInsufficientStock))

		rec := f.do(http.MethodPost, "/api/cart/add", `{"productId":3,"quantity":50}`, customerToken)

		body := requireError(t, rec, http.StatusBadRequest, "INSUFFICIENT_STOCK")
		assert.Equal(t, "Insufficient stock", body["message"])
	})

	for _, path := range []string{"/api/cart/4", "/api/cart/update/4"} {
		t.Run("update via "+path, func(t *testing.T) {
			f := newAPIFixture(t)
			f.cart.EXPECT().UpdateQuantity(mock.Anything, customer.ID, uint64(4), 3).Return(nil)

			rec := f.do(http.MethodPut, path, `{"quantity":3}`, customerToken)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}

	for _, path := range []string{"/api/cart/4", "/api/cart/remove/4"} {
		t.Run("remove via "+path, func(t *testing.T) {
			f := newAPIFixture(t)
			f.cart.EXPECT().Remove(mock.Anything, customer.ID, uint64(4)).
				Return(errors.WithStack(domainerrors.ErrCartItemNotFound))

			rec := f.do(http.MethodDelete, path, "", customerToken)

			requireError(t, rec, http.StatusNotFound, "CART_ITEM_NOT_FOUND")
		})
	}

	t.Run("clear", func(t *testing.T) {
		f := newAPIFixture(t)
		f.cart.EXPECT().Clear(mock.Anything, customer.ID).Return(nil)

		rec := f.do(http.MethodDelete, "/api/cart", "", customerToken)

		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOrderHandler_List(t *testing.T) {
	f := newAPIFixture(t)
	f.order.EXPECT().List(mock.Anything, usecase.ListOrdersInput{
		UserID: customer.ID, Page: 2, Limit: 5, Sort: "status", Order: "asc",
	}).Return(&usecase.OrderPage{Page: 2, Limit: 5}, nil)

	rec := f.do(http.MethodGet, "/api/orders?page=2&limit=5&sort=status&order=asc", "", customerToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestOrderHandler_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/orders/abc", "", customerToken)

		body := requireError(t, rec, http.StatusBadRequest, "INVALID_ORDER_ID")
		assert.Equal(t, "Invalid order ID", body["message"])
	})

	t.Run("another user's order is not found", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().Get(mock.Anything, customer.ID, uint64(40)).Return(nil, errors.WithStack(domainerrors.ErrOrderNotFound))

		rec := f.do(http.MethodGet, "/api/orders/40", "", customerToken)

		requireError(t, rec, http.StatusNotFound, "ORDER_NOT_FOUND")
	})

	t.Run("found", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().Get(mock.Anything, customer.ID, uint64(41)).Return(&entity.Order{
			ID: 41, UserID: customer.ID, Status: entity.OrderStatusPending, TotalAmount: decimal.RequireFromString("39.98"),
		}, nil)

		rec := f.do(http.MethodGet, "/api/orders/41", "", customerToken)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "pending", body["status"])
		assert.Equal(t, "39.98", body["total_amount"])
	})
}

func TestOrderHandler_Create(t *testing.T) {
	t.Run("creates the order", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().Create(mock.Anything, usecase.CreateOrderInput{
			UserID: customer.ID, ProductID: 3, Quantity: 2, ShippingAddress: "1 Main Street",
		}).Return(&entity.Order{ID: 77}, nil)

		rec := f.do(http.MethodPost, "/api/orders",
			`{"productId":3,"quantity":2,"shippingAddress":"1 Main Street"}`, customerToken)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decode(t, rec)
		assert.Equal(t, "Order created successfully", body["message"])
		assert.EqualValues(t, 77, body["orderId"])
	})

	t.Run("a non-numeric quantity is invalid input", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/orders",
			`{"productId":3,"quantity":"two","shippingAddress":"1 Main Street"}`, customerToken)

		body := requireError(t, rec, http.StatusBadRequest, "INVALID_ORDER_INPUT")
		assert.Equal(t, "Invalid input: ensure all fields are valid", body["message"])
	})
}

func TestOrderHandler_Checkout(t *testing.T) {
	t.Run("places the cart", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().Checkout(mock.Anything, customer.ID, "1 Main Street").Return(&usecase.CheckoutOutput{
			OrderIDs:    []uint64{5, 6},
			TotalAmount: decimal.RequireFromString("25.50"),
		}, nil)

		rec := f.do(http.MethodPost, "/api/orders/checkout", `{"shippingAddress":"1 Main Street"}`, customerToken)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decode(t, rec)
		assert.Equal(t, []any{float64(5), float64(6)}, body["orderIds"])
		assert.Equal(t, "25.5", body["totalAmount"])
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().Checkout(mock.Anything, customer.ID, "1 Main Street").
			Return(nil, errors.WithStack(domainerrors.ErrCartEmpty))

		rec := f.do(http.MethodPost, "/api/orders/checkout", `{"shippingAddress":"1 Main Street"}`, customerToken)

		requireError(t, rec, http.StatusBadRequest, "CART_EMPTY")
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("someone else's order is forbidden", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().UpdateStatus(mock.Anything, customer.ID, uint64(9), "cancelled").
			Return(nil, errors.WithStack(domainerrors.ErrOrderUpdateForbidden))

		rec := f.do(http.MethodPut, "/api/orders/9", `{"status":"cancelled"}`, customerToken)

		body := requireError(t, rec, http.StatusForbidden, "ORDER_UPDATE_FORBIDDEN")
		assert.Equal(t, "You are not authorized to update this order", body["message"])
	})

	t.Run("updates", func(t *testing.T) {
		f := newAPIFixture(t)
		f.order.EXPECT().UpdateStatus(mock.Anything, customer.ID, uint64(9), "shipped").
			Return(&entity.Order{ID: 9, Status: entity.OrderStatusShipped}, nil)

		rec := f.do(http.MethodPut, "/api/orders/9", `{"status":"shipped"}`, customerToken)

		require.Equal(t, http.StatusOK, rec.Code)
	})
}
