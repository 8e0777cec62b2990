package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Root answers the SPA's liveness check.
func Root(c echo.Context) error {
	return response.Message(c, http.StatusOK, "Server is running!")
}

func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
