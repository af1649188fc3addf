package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hostalops-api/internal/application/dto"
	"github.com/jhoicas/hostalops-api/internal/application/seasonality"
	"github.com/jhoicas/hostalops-api/pkg/config"
)

// SeasonalityHandler maneja el endpoint del reporte estacional.
type SeasonalityHandler struct {
	uc  *seasonality.UseCase
	cfg config.AnalyticsConfig
}

// NewSeasonalityHandler construye el handler.
func NewSeasonalityHandler(uc *seasonality.UseCase, cfg config.AnalyticsConfig) *SeasonalityHandler {
	return &SeasonalityHandler{uc: uc, cfg: cfg}
}

// seasonalityRequest parámetros de GET /api/analytics/seasonality.
type seasonalityRequest struct {
	Years int `query:"years"` // años de historial; default y tope desde configuración
}

// GetSeasonality devuelve la descomposición mensual/trimestral con métricas e
// insights derivados.
// GET /api/analytics/seasonality
//
// Respuesta: SeasonalityReportDTO (monthly_data[12] enero-primero,
// quarterly_data[4], metrics). Los consumidores dependen del orden posicional.
func (h *SeasonalityHandler) GetSeasonality(c *fiber.Ctx) error {
	var req seasonalityRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	years := req.Years
	if years == 0 {
		years = h.cfg.SeasonalityYears
	}
	if years < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "years debe ser mayor que 0",
		})
	}
	if years > h.cfg.MaxYears {
		years = h.cfg.MaxYears
	}

	report, err := h.uc.GetSeasonality(c.Context(), years)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(report)
}
