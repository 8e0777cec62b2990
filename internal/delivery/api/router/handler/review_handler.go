package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.ReviewUC}
}

type CreateReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	ReviewText string `json:"review_text"`
}

// ReviewsResponse is the product review listing.
type ReviewsResponse struct {
	Reviews []*entity.Review      `json:"reviews"`
	Summary *entity.ReviewSummary `json:"summary"`
}

func (h *ReviewHandler) List(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.reviewUC.List(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ReviewsResponse{
		Reviews: orEmpty(result.Reviews),
		Summary: result.Summary,
	})
}

func (h *ReviewHandler) Create(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CreateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.Create(c.Request().Context(), usecase.CreateReviewInput{
		UserID:     user.ID,
		ProductID:  productID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"message": "Review added successfully",
		"review":  review,
	})
}
