package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler serves /api/admin. Routes are mounted behind Authenticate and RequireAdmin.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{adminUC: params.AdminUC}
}

type SetUserStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// DashboardResponse backs the admin landing page.
type DashboardResponse struct {
	Stats        *entity.DashboardStats `json:"stats"`
	RecentOrders []*entity.Order        `json:"recentOrders"`
}

func (h *AdminHandler) Customers(c echo.Context) error {
	customers, err := h.adminUC.Customers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orEmpty(customers))
}

func (h *AdminHandler) SalesReport(c echo.Context) error {
	report, err := h.adminUC.SalesReport(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, report)
}

func (h *AdminHandler) MonthlySales(c echo.Context) error {
	sales, err := h.adminUC.MonthlySales(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orEmpty(sales))
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.adminUC.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, DashboardResponse{
		Stats:        dashboard.Stats,
		RecentOrders: orEmpty(dashboard.RecentOrders),
	})
}

func (h *AdminHandler) SetUserStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req SetUserStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.adminUC.SetUserActive(c.Request().Context(), id, *req.IsActive); err != nil {
		return err
	}

	message := "User deactivated successfully"
	if *req.IsActive {
		message = "User activated successfully"
	}

	return response.Message(c, http.StatusOK, message)
}
