package handler_test

import (
	"fmt"
	"net/http"
	"strings"
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

func TestProductHandler_List(t *testing.T) {
	t.Run("forwards search and paging", func(t *testing.T) {
		f := newAPIFixture(t)
		f.product.EXPECT().List(mock.Anything, usecase.ListProductsInput{Query: "lamp", Limit: 5, Offset: 10}).
			Return([]*entity.Product{{ID: 3, Name: "Desk lamp", Price: decimal.RequireFromString("19.99")}}, nil)

		rec := f.do(http.MethodGet, "/api/products?q=lamp&limit=5&offset=10", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Desk lamp"`)
		assert.Contains(t, rec.Body.String(), `"price":"19.99"`)
	})

	t.Run("renders an empty catalog as an empty array", func(t *testing.T) {
		f := newAPIFixture(t)
		f.product.EXPECT().List(mock.Anything, usecase.ListProductsInput{}).Return(nil, nil)

		rec := f.do(http.MethodGet, "/api/products/", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestProductHandler_Get(t *testing.T) {
	t.Run("rejects a non-numeric id", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/products/abc", "", "")

		requireError(t, rec, http.StatusBadRequest, "INVALID_ID")
	})

	t.Run("not found", func(t *testing.T) {
		f := newAPIFixture(t)
		f.product.EXPECT().Get(mock.Anything, uint64(99)).Return(nil, errors.WithStack(domainerrors.ErrProductNotFound))

		rec := f.do(http.MethodGet, "/api/products/99", "", "")

		body := requireError(t, rec, http.StatusNotFound, "PRODUCT_NOT_FOUND")
		assert.Equal(t, "Product not found", body["message"])
		assert.Contains(t, body, "meta")
	})

	t.Run("featured is not mistaken for an id", func(t *testing.T) {
		f := newAPIFixture(t)
		f.product.EXPECT().Featured(mock.Anything).Return([]*entity.Product{{ID: 1, IsFeatured: true}}, nil)

		rec := f.do(http.MethodGet, "/api/products/featured", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"is_featured":true`)
	})
}

func TestProductHandler_QRCode(t *testing.T) {
	f := newAPIFixture(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	f.product.EXPECT().QRCode(mock.Anything, uint64(3)).Return(png, nil)

	rec := f.do(http.MethodGet, "/api/products/3/qrcode", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestProductHandler_Create(t *testing.T) {
	body := `{"name":" Desk lamp ","price":19.99,"stock":3,"category_id":2,"description":"LED"}`

	t.Run("requires a token", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/products", body, "")

		requireError(t, rec, http.StatusUnauthorized, "NO_TOKEN")
	})

	t.Run("requires an admin", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/products", body, customerToken)

		rsp := requireError(t, rec, http.StatusForbidden, "ADMIN_ONLY")
		assert.Equal(t, "Access denied: Admins only", rsp["message"])
	})

	t.Run("creates the product", func(t *testing.T) {
		f := newAPIFixture(t)
		f.product.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in usecase.ProductInput) bool {
			return in.Name == "Desk lamp" &&
				in.Price.Equal(decimal.RequireFromString("19.99")) &&
				in.Stock == 3 &&
				in.CategoryID != nil && *in.CategoryID == 2
		})).Return(&entity.Product{ID: 12}, nil)

		rec := f.do(http.MethodPost, "/api/products", body, adminToken)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.EqualValues(t, 12, decode(t, rec)["productId"])
	})

	t.Run("stock is required", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/products", `{"name":"Desk lamp","price":19.99}`, adminToken)

		requireError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("name longer than the column is rejected", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/products",
			fmt.Sprintf(`{"name":%q,"price":19.99,"stock":3}`, strings.Repeat("n", 256)), adminToken)

		body := requireError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, body["error"].(map[string]any)["details"], "name must be at most 255 characters")
		f.product.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProductHandler_UpdateAndDelete(t *testing.T) {
	f := newAPIFixture(t)
	f.product.EXPECT().Update(mock.Anything, uint64(4), mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrProductNotFound))
	f.product.EXPECT().Delete(mock.Anything, uint64(5)).Return(nil)

	rec := f.do(http.MethodPut, "/api/products/4", `{"name":"x","price":"1.00","stock":0}`, adminToken)
	requireError(t, rec, http.StatusNotFound, "PRODUCT_NOT_FOUND")

	rec = f.do(http.MethodDelete, "/api/products/5", "", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product deleted successfully", decode(t, rec)["message"])
}

func TestReviewHandler(t *testing.T) {
	t.Run("lists reviews with summary", func(t *testing.T) {
		f := newAPIFixture(t)
		f.review.EXPECT().List(mock.Anything, uint64(3)).Return(&usecase.ProductReviews{
			Reviews: []*entity.Review{{ID: 1, Rating: 4, Username: "janedoe"}},
			Summary: &entity.ReviewSummary{AverageRating: 4, TotalCount: 1},
		}, nil)

		rec := f.do(http.MethodGet, "/api/products/3/reviews", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Len(t, body["reviews"], 1)
		assert.EqualValues(t, 1, body["summary"].(map[string]any)["total_count"])
	})

	t.Run("rating out of range", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/products/3/reviews", `{"rating":6}`, customerToken)

		requireError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("second review conflicts", func(t *testing.T) {
		f := newAPIFixture(t)
		f.review.EXPECT().Create(mock.Anything, usecase.CreateReviewInput{
			UserID: customer.ID, ProductID: 3, Rating: 5, ReviewText: "great",
		}).Return(nil, errors.WithStack(domainerrors.ErrReviewAlreadyExists))

		rec := f.do(http.MethodPost, "/api/products/3/reviews", `{"rating":5,"review_text":"great"}`, customerToken)

		requireError(t, rec, http.StatusConflict, "REVIEW_ALREADY_EXISTS")
	})

	t.Run("creates a review", func(t *testing.T) {
		f := newAPIFixture(t)
		f.review.EXPECT().Create(mock.Anything, mock.Anything).Return(&entity.Review{ID: 9, Rating: 5}, nil)

		rec := f.do(http.MethodPost, "/api/products/3/reviews", `{"rating":5}`, customerToken)

		require.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestCategoryHandler(t *testing.T) {
	t.Run("list wraps categories", func(t *testing.T) {
		f := newAPIFixture(t)
		f.category.EXPECT().List(mock.Anything).Return([]*entity.Category{{ID: 1, Name: "Lighting"}}, nil)

		rec := f.do(http.MethodGet, "/api/categories", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode(t, rec)["categories"], 1)
	})

	t.Run("get wraps the category", func(t *testing.T) {
		f := newAPIFixture(t)
		f.category.EXPECT().Get(mock.Anything, uint64(1)).Return(&entity.Category{ID: 1, Name: "Lighting"}, nil)

		rec := f.do(http.MethodGet, "/api/categories/1", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Lighting", decode(t, rec)["category"].(map[string]any)["name"])
	})

	t.Run("empty category is 404", func(t *testing.T) {
		f := newAPIFixture(t)
		f.category.EXPECT().Products(mock.Anything, uint64(2)).Return(nil, errors.WithStack(domainerrors.ErrCategoryEmpty))

		rec := f.do(http.MethodGet, "/api/categories/2/products", "", "")

		body := requireError(t, rec, http.StatusNotFound, "CATEGORY_EMPTY")
		assert.Equal(t, "No products found for this category.", body["message"])
	})

	t.Run("create requires admin", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/categories", `{"name":"Garden"}`, customerToken)

		requireError(t, rec, http.StatusForbidden, "ADMIN_ONLY")
	})

	t.Run("name longer than the column is rejected", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/categories",
			fmt.Sprintf(`{"name":%q}`, strings.Repeat("c", 101)), adminToken)

		body := requireError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, body["error"].(map[string]any)["details"], "name must be at most 100 characters")
		f.category.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("delete in use", func(t *testing.T) {
		f := newAPIFixture(t)
		f.category.EXPECT().Delete(mock.Anything, uint64(1)).Return(errors.WithStack(domainerrors.ErrCategoryInUse))

		rec := f.do(http.MethodDelete, "/api/categories/1", "", adminToken)

		requireError(t, rec, http.StatusConflict, "CATEGORY_IN_USE")
	})
}
