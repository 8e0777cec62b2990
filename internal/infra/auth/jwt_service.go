package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	resetSecret   string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	resetTTL      time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	svc := &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		resetSecret:   cfg.SecretKey.Reset,
		accessTTL:     24 * time.Hour,
		refreshTTL:    7 * 24 * time.Hour,
		resetTTL:      time.Hour,
		now:           time.Now,
	}
	if svc.resetSecret == "" {
		svc.resetSecret = svc.accessSecret
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
		if cfg.Auth.ResetTokenTTL > 0 {
			svc.resetTTL = cfg.Auth.ResetTokenTTL
		}
	}

	return svc, nil
}

// GenerateTokens creates a new access token and refresh token for the user.
func (s *jwtService) GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.GenerateAccessToken(user)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(user, entity.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *jwtService) GenerateAccessToken(user *entity.User) (string, error) {
	return s.generateToken(user, entity.TokenTypeAccess, s.accessTTL, s.accessSecret)
}

func (s *jwtService) GenerateResetToken(user *entity.User) (string, error) {
	return s.generateToken(user, entity.TokenTypeReset, s.resetTTL, s.resetSecret)
}

// ValidateToken parses the token with the secret for the expected type.
func (s *jwtService) ValidateToken(tokenString string, expected entity.TokenType) (*service.Claims, error) {
	secret, err := s.secretFor(expected)
	if err != nil {
		return nil, err
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.WithStack(service.ErrTokenExpired)
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}
	if !token.Valid || claims.Type != expected {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	// sub is authoritative; uid mirrors it for clients.
	sub, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || sub != claims.UserID {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	return claims, nil
}

// HashToken returns the hex SHA-256 of a token for storage.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) secretFor(tokenType entity.TokenType) (string, error) {
	switch tokenType {
	case entity.TokenTypeAccess:
		return s.accessSecret, nil
	case entity.TokenTypeRefresh:
		return s.refreshSecret, nil
	case entity.TokenTypeReset:
		return s.resetSecret, nil
	default:
		return "", errors.Errorf("unknown token type %q", tokenType)
	}
}

// generateToken signs an HS256 token. Every token gets a random jti so two
// tokens issued in the same second still hash differently.
func (s *jwtService) generateToken(user *entity.User, tokenType entity.TokenType, ttl time.Duration, secret string) (string, error) {
	now := s.now()
	claims := service.Claims{
		UserID: user.ID,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	// Only access tokens carry authorization data.
	if tokenType == entity.TokenTypeAccess {
		claims.IsAdmin = user.IsAdmin
		claims.Roles = user.Roles().ToStrings()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}
