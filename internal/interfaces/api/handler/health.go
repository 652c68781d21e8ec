package handler

import (
	"net/http"

	"berries/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness of the service and its database.
type HealthHandler struct {
	ping func() error
	log  logger.Logger
}

// NewHealthHandler creates a HealthHandler that calls ping on every check.
func NewHealthHandler(ping func() error, log logger.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, log: log}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c echo.Context) error {
	if err := h.ping(); err != nil {
		h.log.Error("Health check failed", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "down"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "up"})
}
