package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	reportRepo  repository.ReportRepository
	logger      *slog.Logger
}

type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	ReportRepo  repository.ReportRepository
	Logger      *slog.Logger
}

func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		reportRepo:  params.ReportRepo,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) Customers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := srv.userRepo.ListCustomers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

func (srv *adminService) SalesReport(ctx context.Context) (*entity.SalesReport, error) {
	report, err := srv.reportRepo.SalesReport(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build sales report")
	}

	return report, nil
}

func (srv *adminService) MonthlySales(ctx context.Context) ([]*entity.MonthlySales, error) {
	sales, err := srv.reportRepo.MonthlySales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build monthly sales")
	}

	return sales, nil
}

func (srv *adminService) Dashboard(ctx context.Context) (*usecase.Dashboard, error) {
	report, err := srv.SalesReport(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := srv.reportRepo.CountCustomers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	products, err := srv.productRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	recent, err := srv.orderRepo.Recent(ctx, constants.DashboardRecentOrders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	return &usecase.Dashboard{
		Stats: &entity.DashboardStats{
			TotalOrders:    report.TotalOrders,
			TotalSales:     report.TotalSales,
			TotalCustomers: customers,
			TotalProducts:  products,
		},
		RecentOrders: recent,
	}, nil
}

func (srv *adminService) SetUserActive(ctx context.Context, userID uint64, active bool) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.IsAdmin {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("admin accounts cannot be deactivated here"))
		}

		if err := userRepo.SetActive(ctx, userID, active); err != nil {
			return errors.Wrap(err, "failed to update user status")
		}
		if active {
			return nil
		}

		return errors.Wrap(factory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, userID), "failed to revoke sessions")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User status changed", slog.Uint64("userID", userID), slog.Bool("active", active))

	return nil
}
