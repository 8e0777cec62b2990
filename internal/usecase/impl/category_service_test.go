package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryFixture struct {
	categories *mockRepo.MockCategoryRepository
	products   *mockRepo.MockProductRepository
	cache      *mockService.MockProductCache
	service    usecase.CategoryUsecase
}

func newCategoryFixture(t *testing.T) *categoryFixture {
	t.Helper()

	f := &categoryFixture{
		categories: mockRepo.NewMockCategoryRepository(t),
		products:   mockRepo.NewMockProductRepository(t),
		cache:      mockService.NewMockProductCache(t),
	}
	f.service = NewCategoryService(CategoryServiceParams{
		CategoryRepo: f.categories,
		ProductRepo:  f.products,
		Cache:        f.cache,
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestCategoryService_Get(t *testing.T) {
	f := newCategoryFixture(t)
	srv := f.service
	ctx := context.Background()
	f.categories.EXPECT().FindByID(ctx, uint64(1)).Return(&entity.Category{ID: 1, Name: "Books"}, nil)
	f.categories.EXPECT().FindByID(ctx, uint64(2)).Return(nil, repository.ErrCategoryNotFound)

	category, err := srv.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Books", category.Name)

	_, err = srv.Get(ctx, 2)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_Products(t *testing.T) {
	f := newCategoryFixture(t)
	srv := f.service
	ctx := context.Background()
	empty, full := uint64(1), uint64(2)
	f.products.EXPECT().List(ctx, entity.ProductFilter{CategoryID: &empty}).Return([]*entity.Product{}, nil)
	f.products.EXPECT().List(ctx, entity.ProductFilter{CategoryID: &full}).Return([]*entity.Product{{ID: 9}}, nil)

	_, err := srv.Products(ctx, empty)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryEmpty)

	got, err := srv.Products(ctx, full)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCategoryService_Maintenance(t *testing.T) {
	f := newCategoryFixture(t)
	srv, categories := f.service, f.categories
	ctx := context.Background()

	_, err := srv.Create(ctx, usecase.CategoryInput{Name: "  "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	categories.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.Name == "Toys" })).Return(nil)
	_, err = srv.Create(ctx, usecase.CategoryInput{Name: " Toys "})
	require.NoError(t, err)

	categories.EXPECT().Update(ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.ID == 4 })).Return(repository.ErrCategoryNotFound)
	_, err = srv.Update(ctx, 4, usecase.CategoryInput{Name: "Games"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	categories.EXPECT().Delete(ctx, uint64(5)).Return(domainerrors.ErrCategoryInUse)
	assert.ErrorIs(t, srv.Delete(ctx, 5), domainerrors.ErrCategoryInUse)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestCategoryService_Update_EvictsCachedProducts(t *testing.T) {
	t.Run("renamed category evicts its products", func(t *testing.T) {
		f := newCategoryFixture(t)
		ctx := context.Background()
		id := uint64(3)
		f.categories.EXPECT().Update(ctx, mock.MatchedBy(func(c *entity.Category) bool {
			return c.ID == id && c.Name == "Board Games"
		})).Return(nil)
		f.products.EXPECT().List(ctx, entity.ProductFilter{CategoryID: &id}).
			Return([]*entity.Product{{ID: 11}, {ID: 12}}, nil)
		f.cache.EXPECT().Invalidate(ctx, uint64(11)).Return(nil)
		f.cache.EXPECT().Invalidate(ctx, uint64(12)).Return(errors.New("redis down"))

		category, err := f.service.Update(ctx, id, usecase.CategoryInput{Name: "Board Games"})

		require.NoError(t, err)
		assert.Equal(t, "Board Games", category.Name)
	})

	t.Run("listing failure still updates", func(t *testing.T) {
		f := newCategoryFixture(t)
		ctx := context.Background()
		id := uint64(3)
		f.categories.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)
		f.products.EXPECT().List(ctx, entity.ProductFilter{CategoryID: &id}).Return(nil, errors.New("db down"))

		_, err := f.service.Update(ctx, id, usecase.CategoryInput{Name: "Games"})

		require.NoError(t, err)
		f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})

	t.Run("failed update keeps the cache", func(t *testing.T) {
		f := newCategoryFixture(t)
		ctx := context.Background()
		f.categories.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Category")).Return(repository.ErrCategoryNotFound)

		_, err := f.service.Update(ctx, 3, usecase.CategoryInput{Name: "Games"})

		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
		f.products.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}
