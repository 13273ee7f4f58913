package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Test confirms the API is reachable.
func (h *Handler) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Test successful"})
}

// Root reports service status.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Bible notes API is running",
	})
}
