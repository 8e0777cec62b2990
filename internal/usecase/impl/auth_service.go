// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
	now               func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	exists, err := srv.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing user")
	}
	if exists {
		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists.WithMessage(
			"The username '" + username + "' or email '" + email + "' is already in use.",
		))
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// The unique indexes still catch a racing registration between the check above and this insert.
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		output, err = srv.issueSession(ctx, repoFactory.NewRefreshTokenRepository(), user)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Uint64("userID", user.ID), slog.String("username", user.Username))

	return output, nil
}

func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login with incorrect password", slog.Uint64("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrIncorrectPassword)
	}
	if !user.IsActive {
		return nil, errors.WithStack(domainerrors.ErrUserInactive)
	}

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		output, err = srv.issueSession(ctx, repoFactory.NewRefreshTokenRepository(), user)

		return err
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// issueSession signs a token pair, stores the refresh token hash and enforces the session cap.
func (srv *authService) issueSession(ctx context.Context, refreshRepo repository.RefreshTokenRepository, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	token := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	if srv.maxActiveSessions > 0 {
		if err := refreshRepo.DeleteOldestRefreshTokens(ctx, user.ID, srv.maxActiveSessions); err != nil {
			return nil, errors.Wrap(err, "failed to enforce session limit")
		}
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (srv *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken, entity.TokenTypeRefresh)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return "", errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
		}

		return "", errors.Wrap(err, "failed to find refresh token")
	}
	if stored.UserID != claims.UserID || !stored.ExpiresAt.After(srv.now()) {
		return "", errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	user, err := srv.activeUser(ctx, stored.UserID)
	if err != nil {
		return "", err
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token")
	}

	return accessToken, nil
}

func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken)); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(accessToken, entity.TokenTypeAccess)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.WithStack(domainerrors.ErrTokenExpired)
		}

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	return srv.activeUser(ctx, claims.UserID)
}

// activeUser loads the user behind a token and rejects deactivated accounts.
func (srv *authService) activeUser(ctx context.Context, userID uint64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAuthUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to load token user")
	}
	if !user.IsActive {
		return nil, errors.WithStack(domainerrors.ErrUserInactive)
	}

	return user, nil
}

func (srv *authService) Me(ctx context.Context, userID uint64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *authService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.Me(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Address != nil {
		user.Address = strings.TrimSpace(*input.Address)
	}
	if input.Password != nil {
		if err := srv.hasher.ValidatePasswordStrength(*input.Password); err != nil {
			return nil, err
		}

		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash new password")
		}
		user.PasswordHash = hashed
	}

	if err := srv.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// ForgotPassword returns the reset token. Mail delivery is out of scope, so it is only logged.
func (srv *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := srv.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.WithStack(domainerrors.ErrEmailNotFound)
		}

		return "", errors.Wrap(err, "failed to find user by email")
	}

	token, err := srv.tokenService.GenerateResetToken(user)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate reset token")
	}

	srv.log(ctx).Info("Password reset token issued",
		slog.Uint64("userID", user.ID),
		slog.String("resetToken", token),
	)

	return token, nil
}

// ResetPassword sets the new password and ends every existing session of the account.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	claims, err := srv.tokenService.ValidateToken(input.Token, entity.TokenTypeReset)
	if err != nil {
		return errors.Wrap(domainerrors.ErrResetTokenInvalid, err.Error())
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	hashed, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().UpdatePassword(ctx, claims.UserID, hashed); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrResetTokenInvalid)
			}

			return errors.Wrap(err, "failed to update password")
		}

		return errors.Wrap(
			repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, claims.UserID),
			"failed to revoke sessions after password reset",
		)
	})
}

func (srv *authService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired sessions removed", slog.Int64("count", removed))
	}

	return removed, nil
}
