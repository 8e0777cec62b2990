package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	mockusecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	customerToken = "customer-token"
	adminToken    = "admin-token"
)

var (
	customer = &entity.User{ID: 7, Username: "johndoe", Email: "john@example.com", PasswordHash: "$2a$10$hash", IsActive: true}
	admin    = &entity.User{ID: 1, Username: "admin", Email: "admin@example.com", PasswordHash: "$2a$10$hash", IsAdmin: true, IsActive: true}
)

type apiFixture struct {
	auth     *mockusecase.MockAuthUsecase
	product  *mockusecase.MockProductUsecase
	category *mockusecase.MockCategoryUsecase
	review   *mockusecase.MockReviewUsecase
	cart     *mockusecase.MockCartUsecase
	order    *mockusecase.MockOrderUsecase
	admin    *mockusecase.MockAdminUsecase
	echo     *echo.Echo
}

// newAPIFixture wires the real router and middleware chain over usecase mocks.
func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	f := &apiFixture{
		auth:     mockusecase.NewMockAuthUsecase(t),
		product:  mockusecase.NewMockProductUsecase(t),
		category: mockusecase.NewMockCategoryUsecase(t),
		review:   mockusecase.NewMockReviewUsecase(t),
		cart:     mockusecase.NewMockCartUsecase(t),
		order:    mockusecase.NewMockOrderUsecase(t),
		admin:    mockusecase.NewMockAdminUsecase(t),
	}

	f.auth.EXPECT().Authenticate(mock.Anything, customerToken).Return(customer, nil).Maybe()
	f.auth.EXPECT().Authenticate(mock.Anything, adminToken).Return(admin, nil).Maybe()

	r := router.NewRouter(router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.auth}),
		ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: f.product}),
		ReviewHandler:   handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: f.review}),
		CategoryHandler: handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: f.category}),
		CartHandler:     handler.NewCartHandler(handler.CartHandlerParams{CartUC: f.cart}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: f.order}),
		AdminHandler:    handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: f.admin}),
		AuthMiddleware:  middleware.NewAuthMiddleware(f.auth),
	})

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	f.echo = api.NewEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), r)

	return f
}

func (f *apiFixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

// requireError asserts the status and business code of an error envelope.
func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) map[string]any {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decode(t, rec)
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok, rec.Body.String())
	require.Equal(t, code, errInfo["code"])

	return body
}

func TestRoot(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Server is running!", decode(t, rec)["message"])
}

func TestHealthCheck(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode(t, rec)["status"])
}

func TestUnknownRoute(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/nowhere", "", "")

	body := requireError(t, rec, http.StatusNotFound, "HTTP_ERROR")
	require.Equal(t, "Not Found", body["message"])
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
