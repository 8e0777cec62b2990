package handler_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	t.Run("trims the username and returns both tokens", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().Register(mock.Anything, usecase.RegisterInput{
			Username: "johndoe",
			Email:    "john@example.com",
			Password: "secret1",
		}).Return(&usecase.AuthOutput{AccessToken: "access", RefreshToken: "refresh", User: customer}, nil)

		rec := f.do(http.MethodPost, "/api/auth/register",
			`{"username":"  johndoe ","email":"john@example.com","password":"secret1"}`, "")

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decode(t, rec)
		assert.Equal(t, "User registered successfully", body["message"])
		assert.Equal(t, "access", body["token"])
		assert.Equal(t, "refresh", body["refreshToken"])
	})

	t.Run("rejects a short username before reaching the usecase", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/auth/register",
			`{"username":" jo ","email":"john@example.com","password":"secret1"}`, "")

		body := requireError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, body["error"].(map[string]any)["details"], "username must be at least 3 characters")
		f.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/auth/register",
			`{"username":"johndoe","email":"not-an-email","password":"secret1"}`, "")

		requireError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("rejects oversized fields before reaching the usecase", func(t *testing.T) {
		longEmail := strings.Repeat("a", 60) + "@" + strings.Repeat("b", 40) + ".com"
		tests := []struct {
			name     string
			username string
			email    string
			password string
			details  string
		}{
			{name: "username", username: strings.Repeat("u", 60), email: "john@example.com", password: "secret1", details: "username must be at most 50 characters"},
			{name: "email", username: "johndoe", email: longEmail, password: "secret1"},
			{name: "password", username: "johndoe", email: "john@example.com", password: strings.Repeat("p", 80), details: "password must be at most 72 characters"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newAPIFixture(t)

				rec := f.do(http.MethodPost, "/api/auth/register",
					fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, tt.username, tt.email, tt.password), "")

				body := requireError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
				if tt.details != "" {
					assert.Contains(t, body["error"].(map[string]any)["details"], tt.details)
				}
				f.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("reports a taken username or email", func(t *testing.T) {
		f := newAPIFixture(t)
		dup := domainerrors.ErrUserAlreadyExists.WithMessage("The username 'johndoe' or email 'john@example.com' is already in use.")
		f.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, errors.WithStack(dup))

		rec := f.do(http.MethodPost, "/api/auth/register",
			`{"username":"johndoe","email":"john@example.com","password":"secret1"}`, "")

		body := requireError(t, rec, http.StatusBadRequest, "USER_ALREADY_EXISTS")
		assert.Equal(t, "The username 'johndoe' or email 'john@example.com' is already in use.", body["message"])
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns the user without the password hash", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().Login(mock.Anything, usecase.LoginInput{Username: "johndoe", Password: "password123"}).
			Return(&usecase.AuthOutput{AccessToken: "access", RefreshToken: "refresh", User: customer}, nil)

		rec := f.do(http.MethodPost, "/api/auth/login", `{"username":"johndoe","password":"password123"}`, "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "Login successful", body["message"])
		user := body["user"].(map[string]any)
		assert.Equal(t, "johndoe", user["username"])
		assert.Equal(t, false, user["is_admin"])
		assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
	})

	t.Run("maps an unknown user to 404", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrUserNotFound))

		rec := f.do(http.MethodPost, "/api/auth/login", `{"username":"ghost","password":"x"}`, "")

		requireError(t, rec, http.StatusNotFound, "USER_NOT_FOUND")
	})

	t.Run("maps a wrong password to 401", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrIncorrectPassword))

		rec := f.do(http.MethodPost, "/api/auth/login", `{"username":"johndoe","password":"nope"}`, "")

		body := requireError(t, rec, http.StatusUnauthorized, "INCORRECT_PASSWORD")
		assert.Nil(t, body["error"].(map[string]any)["details"])
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/auth/login", `{"username":`, "")

		requireError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("requires a bearer token", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/auth/me", "", "")

		requireError(t, rec, http.StatusUnauthorized, "NO_TOKEN")
	})

	t.Run("passes through token errors", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, errors.WithStack(domainerrors.ErrTokenExpired))

		rec := f.do(http.MethodGet, "/api/auth/me", "", "stale")

		requireError(t, rec, http.StatusUnauthorized, "TOKEN_EXPIRED")
	})

	t.Run("returns the current user", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().Me(mock.Anything, customer.ID).Return(customer, nil)

		rec := f.do(http.MethodGet, "/api/auth/me", "", customerToken)

		require.Equal(t, http.StatusOK, rec.Code)
		user := decode(t, rec)["user"].(map[string]any)
		assert.Equal(t, "john@example.com", user["email"])
		assert.NotContains(t, rec.Body.String(), "password")
	})
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	t.Run("updates the address", func(t *testing.T) {
		f := newAPIFixture(t)
		address := "221B Baker Street"
		f.auth.EXPECT().UpdateProfile(mock.Anything, mock.MatchedBy(func(in usecase.UpdateProfileInput) bool {
			return in.UserID == customer.ID && in.Address != nil && *in.Address == address && in.Password == nil
		})).Return(customer, nil)

		rec := f.do(http.MethodPut, "/api/auth/update", `{"address":"221B Baker Street"}`, customerToken)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "User information updated successfully", decode(t, rec)["message"])
	})

	t.Run("address longer than the column is rejected", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPut, "/api/auth/update",
			fmt.Sprintf(`{"address":%q}`, strings.Repeat("x", 256)), customerToken)

		body := requireError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, body["error"].(map[string]any)["details"], "address must be at most 255 characters")
		f.auth.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})

	t.Run("password over the bcrypt limit is rejected", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPut, "/api/auth/update",
			fmt.Sprintf(`{"password":%q}`, strings.Repeat("p", 73)), customerToken)

		requireError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		f.auth.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_PasswordReset(t *testing.T) {
	t.Run("forgot password does not leak the token", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().ForgotPassword(mock.Anything, "john@example.com").Return("reset-token", nil)

		rec := f.do(http.MethodPost, "/api/auth/forgot-password", `{"email":"john@example.com"}`, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Password reset email sent", decode(t, rec)["message"])
		assert.NotContains(t, rec.Body.String(), "reset-token")
	})

	t.Run("unknown email is 404", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().ForgotPassword(mock.Anything, "ghost@example.com").
			Return("", errors.WithStack(domainerrors.ErrEmailNotFound))

		rec := f.do(http.MethodPost, "/api/auth/forgot-password", `{"email":"ghost@example.com"}`, "")

		requireError(t, rec, http.StatusNotFound, "EMAIL_NOT_FOUND")
	})

	t.Run("reset password", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().ResetPassword(mock.Anything, usecase.ResetPasswordInput{Token: "tok", NewPassword: "newpass123"}).Return(nil)

		rec := f.do(http.MethodPost, "/api/auth/reset-password", `{"token":"tok","newPassword":"newpass123"}`, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Password reset successfully", decode(t, rec)["message"])
	})
}

func TestAuthHandler_Sessions(t *testing.T) {
	t.Run("refresh returns a new access token", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().RefreshAccessToken(mock.Anything, "refresh").Return("access-2", nil)

		rec := f.do(http.MethodPost, "/api/auth/refresh", `{"refreshToken":"refresh"}`, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "access-2", decode(t, rec)["token"])
	})

	t.Run("refresh requires the token field", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/auth/refresh", `{}`, "")

		requireError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("logout", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().Logout(mock.Anything, "refresh").Return(nil)

		rec := f.do(http.MethodPost, "/api/auth/logout", `{"refreshToken":"refresh"}`, "")

		require.Equal(t, http.StatusOK, rec.Code)
	})
}
