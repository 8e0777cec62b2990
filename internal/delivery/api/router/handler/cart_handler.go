package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler serves the authenticated user's cart. Every route requires Authenticate.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

type AddToCartRequest struct {
	ProductID uint64 `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func (h *CartHandler) List(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	items, err := h.cartUC.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orEmpty(items))
}

func (h *CartHandler) Add(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req AddToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.cartUC.Add(c.Request().Context(), user.ID, req.ProductID, req.Quantity); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Product added to cart")
}

func (h *CartHandler) Update(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.cartUC.UpdateQuantity(c.Request().Context(), user.ID, itemID, req.Quantity); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Cart updated successfully")
}

func (h *CartHandler) Remove(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.cartUC.Remove(c.Request().Context(), user.ID, itemID); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Item removed from cart")
}

func (h *CartHandler) Clear(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	if err := h.cartUC.Clear(c.Request().Context(), user.ID); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Cart cleared")
}
