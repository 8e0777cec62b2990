package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
	cache       service.ProductCache
	qrcode      service.QRCodeService
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Cache       service.ProductCache
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		cache:       params.Cache,
		qrcode:      params.QRCode,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) List(ctx context.Context, input usecase.ListProductsInput) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, entity.ProductFilter{
		Query:  strings.TrimSpace(input.Query),
		Limit:  max(input.Limit, 0),
		Offset: max(input.Offset, 0),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) Featured(ctx context.Context) ([]*entity.Product, error) {
	if cached, err := srv.cache.GetFeatured(ctx); err == nil {
		return cached, nil
	} else if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Featured product cache read failed", slog.Any("error", err))
	}

	products, err := srv.productRepo.List(ctx, entity.ProductFilter{Featured: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	if err := srv.cache.SetFeatured(ctx, products); err != nil {
		srv.log(ctx).Warn("Featured product cache write failed", slog.Any("error", err))
	}

	return products, nil
}

func (srv *productService) ListByCategory(ctx context.Context, categoryID uint64) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, entity.ProductFilter{CategoryID: &categoryID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

func (srv *productService) Get(ctx context.Context, id uint64) (*entity.Product, error) {
	if cached, err := srv.cache.GetProduct(ctx, id); err == nil {
		return cached, nil
	} else if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Product cache read failed", slog.Uint64("productID", id), slog.Any("error", err))
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err)
	}

	if err := srv.cache.SetProduct(ctx, product); err != nil {
		srv.log(ctx).Warn("Product cache write failed", slog.Uint64("productID", id), slog.Any("error", err))
	}

	return product, nil
}

func (srv *productService) QRCode(ctx context.Context, id uint64) ([]byte, error) {
	if _, err := srv.Get(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateProductQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

func (srv *productService) Create(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product, err := buildProduct(input)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.invalidate(ctx, product.ID)
	srv.log(ctx).Info("Product created", slog.Uint64("productID", product.ID))

	return product, nil
}

func (srv *productService) Update(ctx context.Context, id uint64, input usecase.ProductInput) (*entity.Product, error) {
	product, err := buildProduct(input)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, mapProductError(err)
	}

	srv.invalidate(ctx, id)

	return product, nil
}

func (srv *productService) Delete(ctx context.Context, id uint64) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return mapProductError(err)
	}

	srv.invalidate(ctx, id)
	srv.log(ctx).Info("Product deleted", slog.Uint64("productID", id))

	return nil
}

func (srv *productService) invalidate(ctx context.Context, id uint64) {
	invalidateProducts(ctx, srv.cache, srv.log(ctx), id)
}

// invalidateProducts evicts cached product reads. A failed eviction leaves the
// entry to expire on its TTL.
func invalidateProducts(ctx context.Context, cache service.ProductCache, logger *slog.Logger, ids ...uint64) {
	for _, id := range ids {
		if err := cache.Invalidate(ctx, id); err != nil {
			logger.Warn("Product cache invalidation failed", slog.Uint64("productID", id), slog.Any("error", err))
		}
	}
}

func buildProduct(input usecase.ProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name is required"))
	case input.Price.IsNegative():
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("price must be a non-negative number"))
	case input.Stock < 0:
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("stock must be a non-negative integer"))
	}

	return &entity.Product{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price.Round(2),
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		IsFeatured:  input.IsFeatured,
	}, nil
}

func mapProductError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return errors.WithStack(domainerrors.ErrProductNotFound)
	}

	return errors.Wrap(err, "product repository")
}
