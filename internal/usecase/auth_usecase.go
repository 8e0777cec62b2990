// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// UpdateProfileInput carries optional profile changes. Nil fields are left untouched.
type UpdateProfileInput struct {
	UserID   uint64
	Address  *string
	Password *string
}

// ResetPasswordInput completes a forgot-password flow.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful register or login.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase covers accounts, sessions and token verification.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error

	// Authenticate resolves an access token to an active user.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)

	Me(ctx context.Context, userID uint64) (*entity.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)

	// ForgotPassword issues a reset token for the account with that email.
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// CleanupExpiredSessions deletes expired refresh tokens and reports how many were removed.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
