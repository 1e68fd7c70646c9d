package handlers

import (
	"net/http"
	"time"

	"github.com/Greco-cyber/poster-dashboard/internal/dto"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles the health check endpoint
type HealthHandler struct{}

// NewHealthHandler creates a new health check handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthCheck reports process liveness. It never touches the vendor, so it
// succeeds even when no API token is configured.
//
// Method: GET /api/health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		OK: true,
		TS: time.Now().UTC().Format(time.RFC3339),
	})
}
