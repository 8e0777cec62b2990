package impl

import (
	"context"
	"testing"

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

type productFixture struct {
	products *mockRepo.MockProductRepository
	cache    *mockService.MockProductCache
	qrcode   *mockService.MockQRCodeService
	service  usecase.ProductUsecase
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()

	f := &productFixture{
		products: mockRepo.NewMockProductRepository(t),
		cache:    mockService.NewMockProductCache(t),
		qrcode:   mockService.NewMockQRCodeService(t),
	}
	f.service = NewProductService(ProductServiceParams{
		ProductRepo: f.products,
		Cache:       f.cache,
		QRCode:      f.qrcode,
		Logger:      newDiscardLogger(),
	})

	return f
}

func TestProductService_Get_CacheHit(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()
	cached := &entity.Product{ID: 1, Name: "Laptop"}
	f.cache.EXPECT().GetProduct(ctx, uint64(1)).Return(cached, nil)

	got, err := f.service.Get(ctx, 1)

	require.NoError(t, err)
	assert.Same(t, cached, got)
	f.products.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestProductService_Get_CacheMissFillsCache(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()
	product := &entity.Product{ID: 2, Name: "Phone"}
	f.cache.EXPECT().GetProduct(ctx, uint64(2)).Return(nil, service.ErrCacheMiss)
	f.products.EXPECT().FindByID(ctx, uint64(2)).Return(product, nil)
	f.cache.EXPECT().SetProduct(ctx, product).Return(nil)

	got, err := f.service.Get(ctx, 2)

	require.NoError(t, err)
	assert.Same(t, product, got)
}

func TestProductService_Get_CacheErrorFallsBackToDatabase(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()
	product := &entity.Product{ID: 2}
	f.cache.EXPECT().GetProduct(ctx, uint64(2)).Return(nil, errors.New("connection refused"))
	f.products.EXPECT().FindByID(ctx, uint64(2)).Return(product, nil)
	f.cache.EXPECT().SetProduct(ctx, product).Return(errors.New("connection refused"))

	got, err := f.service.Get(ctx, 2)

	require.NoError(t, err)
	assert.Same(t, product, got)
}

func TestProductService_Get_NotFound(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()
	f.cache.EXPECT().GetProduct(ctx, uint64(404)).Return(nil, service.ErrCacheMiss)
	f.products.EXPECT().FindByID(ctx, uint64(404)).Return(nil, repository.ErrProductNotFound)

	_, err := f.service.Get(ctx, 404)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_Featured(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()
	featured := []*entity.Product{{ID: 1, IsFeatured: true}}
	f.cache.EXPECT().GetFeatured(ctx).Return(nil, service.ErrCacheMiss)
	f.products.EXPECT().List(ctx, entity.ProductFilter{Featured: true}).Return(featured, nil)
	f.cache.EXPECT().SetFeatured(ctx, featured).Return(nil)

	got, err := f.service.Featured(ctx)

	require.NoError(t, err)
	assert.Equal(t, featured, got)
}

func TestProductService_List_TrimsQuery(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()
	f.products.EXPECT().List(ctx, entity.ProductFilter{Query: "lap", Limit: 0, Offset: 0}).Return([]*entity.Product{}, nil)

	got, err := f.service.List(ctx, usecase.ListProductsInput{Query: "  lap ", Limit: -5, Offset: -1})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProductService_Create(t *testing.T) {
	categoryID := uint64(3)

	t.Run("validation", func(t *testing.T) {
		f := newProductFixture(t)
		ctx := context.Background()

		_, err := f.service.Create(ctx, usecase.ProductInput{Name: " ", Price: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = f.service.Create(ctx, usecase.ProductInput{Name: "x", Price: decimal.NewFromInt(-1)})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = f.service.Create(ctx, usecase.ProductInput{Name: "x", Price: decimal.NewFromInt(1), Stock: -1})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("success invalidates cache", func(t *testing.T) {
		f := newProductFixture(t)
		ctx := context.Background()
		f.products.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Name == "Desk" && p.Price.Equal(decimal.RequireFromString("99.99")) && *p.CategoryID == categoryID
		})).Run(func(_ context.Context, product *entity.Product) {
			product.ID = 11
		}).Return(nil)
		f.cache.EXPECT().Invalidate(ctx, uint64(11)).Return(nil)

		product, err := f.service.Create(ctx, usecase.ProductInput{
			Name:       "Desk",
			Price:      decimal.RequireFromString("99.99"),
			Stock:      4,
			CategoryID: &categoryID,
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(11), product.ID)
	})
}

func TestProductService_UpdateAndDelete(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()
	f.products.EXPECT().Update(ctx, mock.MatchedBy(func(p *entity.Product) bool { return p.ID == 5 })).Return(nil)
	f.products.EXPECT().Update(ctx, mock.MatchedBy(func(p *entity.Product) bool { return p.ID == 6 })).Return(repository.ErrProductNotFound)
	f.products.EXPECT().Delete(ctx, uint64(5)).Return(nil)
	f.products.EXPECT().Delete(ctx, uint64(6)).Return(repository.ErrProductNotFound)
	f.cache.EXPECT().Invalidate(ctx, uint64(5)).Return(nil).Twice()

	input := usecase.ProductInput{Name: "Lamp", Price: decimal.NewFromInt(20), Stock: 1}

	_, err := f.service.Update(ctx, 5, input)
	require.NoError(t, err)

	_, err = f.service.Update(ctx, 6, input)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	require.NoError(t, f.service.Delete(ctx, 5))
	assert.ErrorIs(t, f.service.Delete(ctx, 6), domainerrors.ErrProductNotFound)
}

func TestProductService_QRCode(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()
	f.cache.EXPECT().GetProduct(ctx, uint64(1)).Return(&entity.Product{ID: 1}, nil)
	f.qrcode.EXPECT().GenerateProductQR(uint64(1)).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := f.service.QRCode(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
