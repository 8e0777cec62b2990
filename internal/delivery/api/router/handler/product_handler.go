package handler

import (
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves the catalog under /api/products.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// ProductRequest is the body of product create and full update.
type ProductRequest struct {
	Name        string           `json:"name" validate:"required,max=255"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Stock       *int             `json:"stock" validate:"required,gte=0"`
	CategoryID  *uint64          `json:"category_id"`
	ImageURL    string           `json:"image_url" validate:"max=255"`
	IsFeatured  bool             `json:"is_featured"`
}

func (r *ProductRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Price:       *r.Price,
		Stock:       *r.Stock,
		CategoryID:  r.CategoryID,
		ImageURL:    r.ImageURL,
		IsFeatured:  r.IsFeatured,
	}
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productUC.List(c.Request().Context(), usecase.ListProductsInput{
		Query:  c.QueryParam("q"),
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orEmpty(products))
}

func (h *ProductHandler) Featured(c echo.Context) error {
	products, err := h.productUC.Featured(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orEmpty(products))
}

func (h *ProductHandler) ListByCategory(c echo.Context) error {
	categoryID, err := pathID(c, "categoryId")
	if err != nil {
		return err
	}

	products, err := h.productUC.ListByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orEmpty(products))
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product)
}

// QRCode renders the product share link as a PNG.
func (h *ProductHandler) QRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.productUC.QRCode(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"message":   "Product created successfully",
		"productId": product.ID,
	})
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.productUC.Update(c.Request().Context(), id, req.toInput()); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Product updated successfully")
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Product deleted successfully")
}
