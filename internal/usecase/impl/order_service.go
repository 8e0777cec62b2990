package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	minShippingAddressLen = 5
	maxShippingAddressLen = 255
)

var orderSorts = map[string]entity.OrderSort{
	string(entity.OrderSortCreatedAt):   entity.OrderSortCreatedAt,
	string(entity.OrderSortTotalAmount): entity.OrderSortTotalAmount,
	string(entity.OrderSortStatus):      entity.OrderSortStatus,
	string(entity.OrderSortID):          entity.OrderSortID,
}

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	cache     service.ProductCache
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Cache     service.ProductCache
	Logger    *slog.Logger
}

func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		cache:     params.Cache,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) List(ctx context.Context, input usecase.ListOrdersInput) (*usecase.OrderPage, error) {
	query := sanitizeOrderListQuery(input)

	orders, err := srv.orderRepo.ListByUser(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{Orders: orders, Page: query.Page, Limit: query.Limit}, nil
}

// sanitizeOrderListQuery clamps paging and maps sort/order onto the whitelist.
func sanitizeOrderListQuery(input usecase.ListOrdersInput) entity.OrderListQuery {
	query := entity.OrderListQuery{
		UserID:     input.UserID,
		Page:       input.Page,
		Limit:      input.Limit,
		Sort:       entity.OrderSortCreatedAt,
		Descending: true,
	}

	if query.Page < 1 {
		query.Page = 1
	}
	switch {
	case query.Limit < 1:
		query.Limit = constants.DefaultOrderPageLimit
	case query.Limit > constants.MaxOrderPageLimit:
		query.Limit = constants.MaxOrderPageLimit
	}

	if sort, ok := orderSorts[strings.ToLower(strings.TrimSpace(input.Sort))]; ok {
		query.Sort = sort
	}
	if strings.EqualFold(strings.TrimSpace(input.Order), "ASC") {
		query.Descending = false
	}

	return query
}

func (srv *orderService) Get(ctx context.Context, userID, orderID uint64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

func (srv *orderService) Create(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	address := strings.TrimSpace(input.ShippingAddress)
	if input.ProductID == 0 || input.Quantity <= 0 || !validShippingAddress(address) {
		return nil, errors.WithStack(domainerrors.ErrInvalidOrderInput)
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		order, err = placeOrder(ctx, factory, input.UserID, input.ProductID, input.Quantity, address)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Uint64("orderID", order.ID),
		slog.Uint64("userID", order.UserID),
		slog.Uint64("productID", order.ProductID),
		slog.Int("quantity", order.Quantity))
	invalidateProducts(ctx, srv.cache, srv.log(ctx), order.ProductID)
	srv.publish(ctx, service.OrderEventPlaced, order)

	return order, nil
}

func (srv *orderService) Checkout(ctx context.Context, userID uint64, shippingAddress string) (*usecase.CheckoutOutput, error) {
	address := strings.TrimSpace(shippingAddress)
	if !validShippingAddress(address) {
		return nil, errors.WithStack(domainerrors.ErrInvalidOrderInput)
	}

	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		cartRepo := factory.NewCartRepository()
		items, err := cartRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if len(items) == 0 {
			return errors.WithStack(domainerrors.ErrCartEmpty)
		}
		// Product rows are locked in id order so concurrent checkouts cannot deadlock.
		slices.SortFunc(items, func(a, b *entity.CartItem) int {
			return cmp.Compare(a.ProductID, b.ProductID)
		})

		orders = make([]*entity.Order, 0, len(items))
		for _, item := range items {
			order, err := placeOrder(ctx, factory, userID, item.ProductID, item.Quantity, address)
			if err != nil {
				return err
			}
			orders = append(orders, order)
		}

		return errors.Wrap(cartRepo.Clear(ctx, userID), "failed to clear cart")
	})
	if err != nil {
		return nil, err
	}

	output := &usecase.CheckoutOutput{
		OrderIDs:    make([]uint64, 0, len(orders)),
		TotalAmount: decimal.Zero,
	}
	for _, order := range orders {
		output.OrderIDs = append(output.OrderIDs, order.ID)
		output.TotalAmount = output.TotalAmount.Add(order.TotalAmount)
		invalidateProducts(ctx, srv.cache, srv.log(ctx), order.ProductID)
		srv.publish(ctx, service.OrderEventPlaced, order)
	}

	srv.log(ctx).Info("Cart checked out",
		slog.Uint64("userID", userID),
		slog.Int("orders", len(orders)),
		slog.String("totalAmount", output.TotalAmount.StringFixed(2)))

	return output, nil
}

// placeOrder must run inside a transaction. The product row is locked so the
// order total uses the price that was current when stock was taken.
func placeOrder(
	ctx context.Context,
	factory repository.RepositoryFactory,
	userID, productID uint64,
	quantity int,
	address string,
) (*entity.Order, error) {
	productRepo := factory.NewProductRepository()

	product, err := productRepo.FindByIDForUpdate(ctx, productID)
	if err != nil {
		return nil, mapProductError(err)
	}

	if err := productRepo.DecreaseStock(ctx, productID, quantity); err != nil {
		return nil, mapStockError(err)
	}

	order := &entity.Order{
		UserID:          userID,
		ProductID:       productID,
		Quantity:        quantity,
		TotalAmount:     product.Price.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
		Status:          entity.OrderStatusPending,
		ShippingAddress: address,
	}
	if err := factory.NewOrderRepository().Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	return order, nil
}

// UpdateStatus moves stock with the status: cancelling restocks, reviving a
// cancelled order takes the stock again and can fail when it is gone.
func (srv *orderService) UpdateStatus(ctx context.Context, userID, orderID uint64, status string) (*entity.Order, error) {
	next := entity.OrderStatus(strings.ToLower(strings.TrimSpace(status)))
	if !next.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidOrderStatus)
	}

	var (
		order      *entity.Order
		previous   entity.OrderStatus
		stockMoved bool
	)
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()

		var err error
		order, err = orderRepo.FindByIDForUserForUpdate(ctx, orderID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.WithStack(domainerrors.ErrOrderUpdateForbidden)
			}

			return errors.Wrap(err, "failed to lock order")
		}
		previous = order.Status

		productRepo := factory.NewProductRepository()
		switch {
		case next == entity.OrderStatusCancelled && previous != entity.OrderStatusCancelled:
			if err := productRepo.IncreaseStock(ctx, order.ProductID, order.Quantity); err != nil {
				return mapProductError(err)
			}
			stockMoved = true
		case previous == entity.OrderStatusCancelled && next != entity.OrderStatusCancelled:
			if err := productRepo.DecreaseStock(ctx, order.ProductID, order.Quantity); err != nil {
				return mapStockError(err)
			}
			stockMoved = true
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, next); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.WithStack(domainerrors.ErrOrderUpdateForbidden)
			}

			return errors.Wrap(err, "failed to update order status")
		}
		order.Status = next

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status updated",
		slog.Uint64("orderID", order.ID),
		slog.String("from", string(previous)),
		slog.String("to", string(next)))
	if stockMoved {
		invalidateProducts(ctx, srv.cache, srv.log(ctx), order.ProductID)
	}
	if previous != next {
		srv.publish(ctx, service.OrderEventStatusChanged, order)
	}

	return order, nil
}

// publish runs after commit; a failed publish never fails the request.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		EventID:     uuid.New().String(),
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		OrderID:     order.ID,
		UserID:      order.UserID,
		ProductID:   order.ProductID,
		Quantity:    order.Quantity,
		TotalAmount: order.TotalAmount.StringFixed(2),
		Status:      string(order.Status),
		OccurredAt:  time.Now().UTC(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("type", eventType),
			slog.Uint64("orderID", order.ID),
			slog.Any("error", err))
	}
}

func validShippingAddress(address string) bool {
	n := utf8.RuneCountInString(address)

	return n >= minShippingAddressLen && n <= maxShippingAddressLen
}

func mapStockError(err error) error {
	switch {
	case errors.Is(err, repository.ErrInsufficientStock):
		return errors.WithStack(domainerrors.ErrInsufficientStock)
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.WithStack(domainerrors.ErrProductNotFound)
	default:
		return errors.Wrap(err, "failed to update stock")
	}
}
