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

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	cache        service.ProductCache
	logger       *slog.Logger
}

type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Cache        service.ProductCache
	Logger       *slog.Logger
}

func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) Get(ctx context.Context, id uint64) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCategoryError(err)
	}

	return category, nil
}

func (srv *categoryService) Products(ctx context.Context, id uint64) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, entity.ProductFilter{CategoryID: &id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list category products")
	}
	if len(products) == 0 {
		return nil, errors.WithStack(domainerrors.ErrCategoryEmpty)
	}

	return products, nil
}

func (srv *categoryService) Create(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	category, err := buildCategory(input)
	if err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Uint64("categoryID", category.ID))

	return category, nil
}

func (srv *categoryService) Update(ctx context.Context, id uint64, input usecase.CategoryInput) (*entity.Category, error) {
	category, err := buildCategory(input)
	if err != nil {
		return nil, err
	}
	category.ID = id

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, mapCategoryError(err)
	}

	srv.evictCategoryProducts(ctx, id)

	return category, nil
}

// Delete succeeds only for categories no product references, so no cached
// product carries its name afterwards.
func (srv *categoryService) Delete(ctx context.Context, id uint64) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return mapCategoryError(err)
	}

	return nil
}

// evictCategoryProducts drops cached products carrying the category name.
func (srv *categoryService) evictCategoryProducts(ctx context.Context, id uint64) {
	products, err := srv.productRepo.List(ctx, entity.ProductFilter{CategoryID: &id})
	if err != nil {
		srv.log(ctx).Warn("Failed to list category products for cache eviction",
			slog.Uint64("categoryID", id), slog.Any("error", err))

		return
	}

	ids := make([]uint64, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}
	invalidateProducts(ctx, srv.cache, srv.log(ctx), ids...)
}

func buildCategory(input usecase.CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name is required"))
	}

	return &entity.Category{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
	}, nil
}

func mapCategoryError(err error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return errors.WithStack(domainerrors.ErrCategoryNotFound)
	}

	return errors.Wrap(err, "category repository")
}
