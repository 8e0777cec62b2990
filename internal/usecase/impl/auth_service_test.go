package impl

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type authFixture struct {
	tx          *txFixture
	users       *mockRepo.MockUserRepository
	refreshRepo *mockRepo.MockRefreshTokenRepository
	hasher      *mockService.MockPasswordHasher
	tokens      *mockService.MockTokenService
	service     usecase.AuthUsecase
}

func newAuthFixture(t *testing.T, maxSessions int) *authFixture {
	t.Helper()

	f := &authFixture{
		tx:          newTxFixture(t),
		users:       mockRepo.NewMockUserRepository(t),
		refreshRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:      mockService.NewMockPasswordHasher(t),
		tokens:      mockService.NewMockTokenService(t),
	}

	srv := NewAuthService(AuthServiceParams{
		TxManager:        f.tx.manager,
		UserRepo:         f.users,
		RefreshTokenRepo: f.refreshRepo,
		Hasher:           f.hasher,
		TokenService:     f.tokens,
		Config:           &config.Config{Auth: &config.AuthConfig{MaxActiveSessions: maxSessions}},
		Logger:           newDiscardLogger(),
	})
	srv.(*authService).now = func() time.Time { return fixedNow }
	f.service = srv

	return f
}

func (f *authFixture) expectSession(ctx context.Context, user *entity.User) {
	f.tokens.EXPECT().GenerateTokens(user).Return("access-token", "refresh-token", nil)
	f.tokens.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	f.tokens.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	f.tx.refreshTokens.EXPECT().CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
		return token.UserID == user.ID &&
			token.TokenHash == "refresh-hash" &&
			token.ExpiresAt.Equal(fixedNow.Add(7*24*time.Hour))
	})).Return(nil)
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthFixture(t, 5)
	ctx := context.Background()

	f.users.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(false, nil)
	f.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	f.tx.expectExecute(ctx)

	var created *entity.User
	f.tx.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			created = user
			created.ID = 7
		}).
		Return(nil)
	f.tokens.EXPECT().GenerateTokens(mock.AnythingOfType("*entity.User")).Return("access-token", "refresh-token", nil)
	f.tokens.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	f.tokens.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	f.tx.refreshTokens.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
	f.tx.refreshTokens.EXPECT().DeleteOldestRefreshTokens(ctx, uint64(7), 5).Return(nil)

	out, err := f.service.Register(ctx, usecase.RegisterInput{
		Username: "  alice ",
		Email:    "alice@example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	require.NotNil(t, created)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "hashed", created.PasswordHash)
	assert.True(t, created.IsActive)
	assert.False(t, created.IsAdmin)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	f := newAuthFixture(t, 0)
	ctx := context.Background()

	f.users.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(true, nil)

	_, err := f.service.Register(ctx, usecase.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	active := &entity.User{ID: 3, Username: "bob", PasswordHash: "hash", IsActive: true}
	inactive := &entity.User{ID: 4, Username: "carol", PasswordHash: "hash", IsActive: false}

	t.Run("unknown user", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		ctx := context.Background()
		f.users.EXPECT().FindByUsername(ctx, "nobody").Return(nil, repository.ErrUserNotFound)

		_, err := f.service.Login(ctx, usecase.LoginInput{Username: "nobody", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		ctx := context.Background()
		f.users.EXPECT().FindByUsername(ctx, "bob").Return(active, nil)
		f.hasher.EXPECT().Check("bad", "hash").Return(false)

		_, err := f.service.Login(ctx, usecase.LoginInput{Username: "bob", Password: "bad"})

		assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
	})

	t.Run("inactive account", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		ctx := context.Background()
		f.users.EXPECT().FindByUsername(ctx, "carol").Return(inactive, nil)
		f.hasher.EXPECT().Check("good", "hash").Return(true)

		_, err := f.service.Login(ctx, usecase.LoginInput{Username: "carol", Password: "good"})

		assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
	})

	t.Run("success without session cap", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		ctx := context.Background()
		f.users.EXPECT().FindByUsername(ctx, "bob").Return(active, nil)
		f.hasher.EXPECT().Check("good", "hash").Return(true)
		f.tx.expectExecute(ctx)
		f.expectSession(ctx, active)

		out, err := f.service.Login(ctx, usecase.LoginInput{Username: "bob", Password: "good"})

		require.NoError(t, err)
		assert.Same(t, active, out.User)
		f.tx.refreshTokens.AssertNotCalled(t, "DeleteOldestRefreshTokens", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("session cap trims old sessions", func(t *testing.T) {
		f := newAuthFixture(t, 2)
		ctx := context.Background()
		f.users.EXPECT().FindByUsername(ctx, "bob").Return(active, nil)
		f.hasher.EXPECT().Check("good", "hash").Return(true)
		f.tx.expectExecute(ctx)
		f.expectSession(ctx, active)
		f.tx.refreshTokens.EXPECT().DeleteOldestRefreshTokens(ctx, uint64(3), 2).Return(nil)

		_, err := f.service.Login(ctx, usecase.LoginInput{Username: "bob", Password: "good"})

		require.NoError(t, err)
	})
}

func TestAuthService_RefreshAccessToken(t *testing.T) {
	user := &entity.User{ID: 9, IsActive: true}

	t.Run("success", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		ctx := context.Background()
		f.tokens.EXPECT().ValidateToken("rt", entity.TokenTypeRefresh).Return(&service.Claims{UserID: 9}, nil)
		f.tokens.EXPECT().HashToken("rt").Return("rt-hash")
		f.refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "rt-hash").
			Return(&entity.RefreshToken{UserID: 9, ExpiresAt: fixedNow.Add(time.Hour)}, nil)
		f.users.EXPECT().FindByID(ctx, uint64(9)).Return(user, nil)
		f.tokens.EXPECT().GenerateAccessToken(user).Return("new-access", nil)

		token, err := f.service.RefreshAccessToken(ctx, "rt")

		require.NoError(t, err)
		assert.Equal(t, "new-access", token)
	})

	t.Run("revoked session", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		ctx := context.Background()
		f.tokens.EXPECT().ValidateToken("rt", entity.TokenTypeRefresh).Return(&service.Claims{UserID: 9}, nil)
		f.tokens.EXPECT().HashToken("rt").Return("rt-hash")
		f.refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "rt-hash").Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := f.service.RefreshAccessToken(ctx, "rt")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("expired session row", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		ctx := context.Background()
		f.tokens.EXPECT().ValidateToken("rt", entity.TokenTypeRefresh).Return(&service.Claims{UserID: 9}, nil)
		f.tokens.EXPECT().HashToken("rt").Return("rt-hash")
		f.refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "rt-hash").
			Return(&entity.RefreshToken{UserID: 9, ExpiresAt: fixedNow.Add(-time.Minute)}, nil)

		_, err := f.service.RefreshAccessToken(ctx, "rt")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("bad signature", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		f.tokens.EXPECT().ValidateToken("rt", entity.TokenTypeRefresh).Return(nil, service.ErrTokenInvalid)

		_, err := f.service.RefreshAccessToken(context.Background(), "rt")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		f.tokens.EXPECT().ValidateToken("tok", entity.TokenTypeAccess).Return(nil, errors.WithStack(service.ErrTokenExpired))

		_, err := f.service.Authenticate(context.Background(), "tok")

		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})

	t.Run("invalid", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		f.tokens.EXPECT().ValidateToken("tok", entity.TokenTypeAccess).Return(nil, service.ErrTokenInvalid)

		_, err := f.service.Authenticate(context.Background(), "tok")

		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("deleted user", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		ctx := context.Background()
		f.tokens.EXPECT().ValidateToken("tok", entity.TokenTypeAccess).Return(&service.Claims{UserID: 5}, nil)
		f.users.EXPECT().FindByID(ctx, uint64(5)).Return(nil, repository.ErrUserNotFound)

		_, err := f.service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, domainerrors.ErrAuthUserNotFound)
	})

	t.Run("inactive user", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		ctx := context.Background()
		f.tokens.EXPECT().ValidateToken("tok", entity.TokenTypeAccess).Return(&service.Claims{UserID: 5}, nil)
		f.users.EXPECT().FindByID(ctx, uint64(5)).Return(&entity.User{ID: 5, IsActive: false}, nil)

		_, err := f.service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
	})

	t.Run("success", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		ctx := context.Background()
		user := &entity.User{ID: 5, IsActive: true, IsAdmin: true}
		f.tokens.EXPECT().ValidateToken("tok", entity.TokenTypeAccess).Return(&service.Claims{UserID: 5}, nil)
		f.users.EXPECT().FindByID(ctx, uint64(5)).Return(user, nil)

		got, err := f.service.Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Same(t, user, got)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	t.Run("weak password is rejected", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		ctx := context.Background()
		password := "short"
		f.users.EXPECT().FindByID(ctx, uint64(2)).Return(&entity.User{ID: 2}, nil)
		f.hasher.EXPECT().ValidatePasswordStrength(password).Return(errors.WithStack(domainerrors.ErrPasswordStrength))

		_, err := f.service.UpdateProfile(ctx, usecase.UpdateProfileInput{UserID: 2, Password: &password})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	})

	t.Run("address and password", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		ctx := context.Background()
		password := "longer123"
		address := " 1 Main St "
		f.users.EXPECT().FindByID(ctx, uint64(2)).Return(&entity.User{ID: 2, PasswordHash: "old"}, nil)
		f.hasher.EXPECT().ValidatePasswordStrength(password).Return(nil)
		f.hasher.EXPECT().Hash(password).Return("new-hash", nil)
		f.users.EXPECT().UpdateProfile(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Address == "1 Main St" && u.PasswordHash == "new-hash"
		})).Return(nil)

		user, err := f.service.UpdateProfile(ctx, usecase.UpdateProfileInput{UserID: 2, Address: &address, Password: &password})

		require.NoError(t, err)
		assert.Equal(t, "1 Main St", user.Address)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	f := newAuthFixture(t, 0)
	ctx := context.Background()
	f.users.EXPECT().FindByEmail(ctx, "missing@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := f.service.ForgotPassword(ctx, "missing@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotFound)

	user := &entity.User{ID: 1, Email: "a@example.com"}
	f.users.EXPECT().FindByEmail(ctx, "a@example.com").Return(user, nil)
	f.tokens.EXPECT().GenerateResetToken(user).Return("reset-token", nil)

	token, err := f.service.ForgotPassword(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "reset-token", token)
}

func TestAuthService_ResetPassword(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		f.tokens.EXPECT().ValidateToken("bad", entity.TokenTypeReset).Return(nil, service.ErrTokenInvalid)

		err := f.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{Token: "bad", NewPassword: "password9"})

		assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
	})

	t.Run("updates password and revokes sessions", func(t *testing.T) {
		f := newAuthFixture(t, 0)
		ctx := context.Background()
		f.tokens.EXPECT().ValidateToken("good", entity.TokenTypeReset).Return(&service.Claims{UserID: 8}, nil)
		f.hasher.EXPECT().ValidatePasswordStrength("password9").Return(nil)
		f.hasher.EXPECT().Hash("password9").Return("hashed", nil)
		f.tx.expectExecute(ctx)
		f.tx.users.EXPECT().UpdatePassword(ctx, uint64(8), "hashed").Return(nil)
		f.tx.refreshTokens.EXPECT().DeleteRefreshTokensByUserID(ctx, uint64(8)).Return(nil)

		err := f.service.ResetPassword(ctx, usecase.ResetPasswordInput{Token: "good", NewPassword: "password9"})

		require.NoError(t, err)
	})
}

func TestAuthService_LogoutAndCleanup(t *testing.T) {
	f := newAuthFixture(t, 0)
	ctx := context.Background()
	f.tokens.EXPECT().HashToken("rt").Return("rt-hash")
	f.refreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "rt-hash").Return(nil)
	f.refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(3), nil)

	require.NoError(t, f.service.Logout(ctx, "rt"))

	removed, err := f.service.CleanupExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
