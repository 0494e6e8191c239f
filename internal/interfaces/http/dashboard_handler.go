package http

import (
	"github.com/gofiber/fiber/v2"

	appstock "github.com/jhoicas/stock-portal/internal/application/stock"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appstock.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appstock.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve métricas y paneles de alerta de una carga fresca de la hoja.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (metrics, critical_items, low_stock_items, refresh_id).
// Si la hoja no entrega datos responde 503 con el mensaje para el usuario.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, msg := h.uc.GetSummary(c.Context())
	if summary == nil {
		return noData(c, msg)
	}
	return c.JSON(summary)
}
