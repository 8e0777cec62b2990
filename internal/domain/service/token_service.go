package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var (
	// ErrTokenExpired is returned when a token's exp claim has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers bad signatures, malformed tokens and wrong token types.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims defines the custom claims for the JWT tokens. The subject holds the user id.
type Claims struct {
	UserID  uint64           `json:"uid"`
	IsAdmin bool             `json:"admin,omitempty"`
	Roles   []string         `json:"roles,omitempty"`
	Type    entity.TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens creates an access token and a refresh token for the user.
	GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates only an access token, used on refresh.
	GenerateAccessToken(user *entity.User) (string, error)

	// GenerateResetToken creates a short-lived password reset token.
	GenerateResetToken(user *entity.User) (string, error)

	// ValidateToken checks signature, expiry and that the token has the expected type.
	ValidateToken(tokenString string, expected entity.TokenType) (*Claims, error)

	// HashToken derives the storage key for a refresh token.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
