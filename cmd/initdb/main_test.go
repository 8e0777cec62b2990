package main

import (
	"testing"

	"storefront/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBuildSeedUsers(t *testing.T) {
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	users, err := buildSeedUsers(hasher)
	require.NoError(t, err)
	require.Len(t, users, 3)

	assert.Equal(t, "admin", users[0].Username)
	assert.True(t, users[0].IsAdmin)
	assert.True(t, hasher.Check("admin123", users[0].PasswordHash))

	for _, u := range users[1:] {
		assert.False(t, u.IsAdmin)
		assert.True(t, u.IsActive)
		assert.True(t, hasher.Check("password123", u.PasswordHash))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
}
