package entity

import "time"

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uint64
	UserID    uint64
	TokenHash string // SHA-256 of the raw token; the raw value is never stored.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// TokenType distinguishes the purpose a signed token was issued for.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
	TokenTypeReset   TokenType = "reset"
)
