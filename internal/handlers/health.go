package handlers

import (
	"github.com/cblte/simple-filament-manager/internal/config"
	"github.com/cblte/simple-filament-manager/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler serves GET /health.
type HealthHandler struct {
	Cfg *config.Config
	DB  *gorm.DB
}

// Check handles GET /health
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)

	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
