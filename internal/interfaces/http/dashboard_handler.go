package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cytochromxxx/StockControl/internal/application/analytics"
)

// DashboardHandler maneja el resumen por categoría.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estadísticas del dashboard por categoría
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  dto.DashboardStatDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}
