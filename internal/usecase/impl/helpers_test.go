package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txFixture wires a transaction manager whose callback sees dedicated repository mocks.
type txFixture struct {
	manager       *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	users         *mockRepo.MockUserRepository
	products      *mockRepo.MockProductRepository
	carts         *mockRepo.MockCartRepository
	orders        *mockRepo.MockOrderRepository
	refreshTokens *mockRepo.MockRefreshTokenRepository
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	f := &txFixture{
		manager:       mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		users:         mockRepo.NewMockUserRepository(t),
		products:      mockRepo.NewMockProductRepository(t),
		carts:         mockRepo.NewMockCartRepository(t),
		orders:        mockRepo.NewMockOrderRepository(t),
		refreshTokens: mockRepo.NewMockRefreshTokenRepository(t),
	}

	f.factory.EXPECT().NewUserRepository().Return(f.users).Maybe()
	f.factory.EXPECT().NewProductRepository().Return(f.products).Maybe()
	f.factory.EXPECT().NewCartRepository().Return(f.carts).Maybe()
	f.factory.EXPECT().NewOrderRepository().Return(f.orders).Maybe()
	f.factory.EXPECT().NewRefreshTokenRepository().Return(f.refreshTokens).Maybe()

	return f
}

// expectExecute runs the transaction callback against the fixture repositories
// and returns whatever the callback returns.
func (f *txFixture) expectExecute(ctx context.Context) {
	f.manager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}
