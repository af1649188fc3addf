package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hostalops-api/internal/application/analytics"
	"github.com/jhoicas/hostalops-api/pkg/config"
)

// OverviewHandler maneja el endpoint del dashboard operativo.
type OverviewHandler struct {
	uc  *analytics.OverviewUseCase
	cfg config.AnalyticsConfig
}

// NewOverviewHandler construye el handler.
func NewOverviewHandler(uc *analytics.OverviewUseCase, cfg config.AnalyticsConfig) *OverviewHandler {
	return &OverviewHandler{uc: uc, cfg: cfg}
}

// GetOverview devuelve pronóstico agregado, ranking por departamento y reporte
// estacional en una sola respuesta, con los parámetros por defecto de la app.
// GET /api/analytics/overview
//
// No recibe parámetros; horizonte y años de historial salen de configuración,
// igual que el dashboard calcula sus rangos en el servidor.
func (h *OverviewHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.uc.GetOverview(c.Context(), h.cfg.DefaultHorizon, h.cfg.SeasonalityYears)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(overview)
}
