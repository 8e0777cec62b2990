package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// CreateOrderRequest is checked by the usecase so every bad field yields the
// same "Invalid input" error.
type CreateOrderRequest struct {
	ProductID       uint64 `json:"productId"`
	Quantity        int    `json:"quantity"`
	ShippingAddress string `json:"shippingAddress"`
}

type CheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func orderID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.WithStack(domainerrors.ErrInvalidOrderID)
	}

	return id, nil
}

func (h *OrderHandler) List(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	page, err := h.orderUC.List(c.Request().Context(), usecase.ListOrdersInput{
		UserID: user.ID,
		Page:   queryInt(c, "page", 0),
		Limit:  queryInt(c, "limit", 0),
		Sort:   c.QueryParam("sort"),
		Order:  c.QueryParam("order"),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orEmpty(page.Orders))
}

func (h *OrderHandler) Get(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	id, err := orderID(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order)
}

func (h *OrderHandler) Create(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidOrderInput)
	}

	order, err := h.orderUC.Create(c.Request().Context(), usecase.CreateOrderInput{
		UserID:          user.ID,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"message": "Order created successfully",
		"orderId": order.ID,
	})
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidOrderInput)
	}

	out, err := h.orderUC.Checkout(c.Request().Context(), user.ID, req.ShippingAddress)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"message":     "Order placed successfully",
		"orderIds":    out.OrderIDs,
		"totalAmount": out.TotalAmount,
	})
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	id, err := orderID(c)
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if _, err := h.orderUC.UpdateStatus(c.Request().Context(), user.ID, id, req.Status); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Order status updated successfully")
}
