package handlers

import (
	"campus-connect/internal/config"
	"campus-connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles the root and health endpoints
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Root greets and points at the docs
// @Summary API root
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return response.Success(c, "Campus Connect API is running", fiber.Map{
		"mode": h.cfg.AppMode,
		"docs": "/swagger/index.html",
	})
}

// HealthCheck reports liveness plus database reachability
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	if err := config.HealthCheck(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"error":   "database unreachable",
		})
	}
	return response.Success(c, "OK", fiber.Map{
		"status": "healthy",
	})
}
