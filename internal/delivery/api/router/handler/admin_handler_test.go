package handler_test

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_Gating(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/admin/customers", "", "")
	requireError(t, rec, http.StatusUnauthorized, "NO_TOKEN")

	rec = f.do(http.MethodGet, "/api/admin/customers", "", customerToken)
	requireError(t, rec, http.StatusForbidden, "ADMIN_ONLY")
}

func TestAdminHandler_Reports(t *testing.T) {
	f := newAPIFixture(t)
	f.admin.EXPECT().Customers(mock.Anything).Return([]*entity.Customer{{ID: 7, Username: "johndoe"}}, nil)
	f.admin.EXPECT().SalesReport(mock.Anything).
		Return(&entity.SalesReport{TotalOrders: 3, TotalSales: decimal.RequireFromString("100.5")}, nil)
	f.admin.EXPECT().MonthlySales(mock.Anything).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/admin/customers", "", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"johndoe"`)

	rec = f.do(http.MethodGet, "/api/admin/sales-report", "", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 3, body["totalOrders"])
	assert.Equal(t, "100.5", body["totalSales"])

	rec = f.do(http.MethodGet, "/api/admin/monthly-sales", "", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAdminHandler_Dashboard(t *testing.T) {
	f := newAPIFixture(t)
	f.admin.EXPECT().Dashboard(mock.Anything).Return(&usecase.Dashboard{
		Stats:        &entity.DashboardStats{TotalOrders: 2, TotalCustomers: 2, TotalProducts: 8, TotalSales: decimal.Zero},
		RecentOrders: []*entity.Order{{ID: 2}, {ID: 1}},
	}, nil)

	rec := f.do(http.MethodGet, "/api/admin/dashboard", "", adminToken)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 8, body["stats"].(map[string]any)["totalProducts"])
	assert.Len(t, body["recentOrders"], 2)
}

func TestAdminHandler_SetUserStatus(t *testing.T) {
	t.Run("is_active is required", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPut, "/api/admin/users/7/status", `{}`, adminToken)

		requireError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("deactivates", func(t *testing.T) {
		f := newAPIFixture(t)
		f.admin.EXPECT().SetUserActive(mock.Anything, uint64(7), false).Return(nil)

		rec := f.do(http.MethodPut, "/api/admin/users/7/status", `{"is_active":false}`, adminToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User deactivated successfully", decode(t, rec)["message"])
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newAPIFixture(t)
		f.admin.EXPECT().SetUserActive(mock.Anything, uint64(70), true).Return(errors.WithStack(domainerrors.ErrUserNotFound))

		rec := f.do(http.MethodPut, "/api/admin/users/70/status", `{"is_active":true}`, adminToken)

		requireError(t, rec, http.StatusNotFound, "USER_NOT_FOUND")
	})
}

func TestUnhandledErrorsAreGeneric(t *testing.T) {
	f := newAPIFixture(t)
	f.admin.EXPECT().SalesReport(mock.Anything).Return(nil, errors.New("dial tcp 10.0.0.3:3306: connection refused"))

	rec := f.do(http.MethodGet, "/api/admin/sales-report", "", adminToken)

	body := requireError(t, rec, http.StatusInternalServerError, "INTERNAL_ERROR")
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}
