package handler

import (
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
}

type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{categoryUC: params.CategoryUC}
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"max=255"`
}

func (r *CategoryRequest) toInput() usecase.CategoryInput {
	return usecase.CategoryInput{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{"categories": orEmpty(categories)})
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{"category": category})
}

func (h *CategoryHandler) Products(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	products, err := h.categoryUC.Products(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orEmpty(products))
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"message":  "Category created successfully",
		"category": category,
	})
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":  "Category updated successfully",
		"category": category,
	})
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Category deleted successfully")
}
