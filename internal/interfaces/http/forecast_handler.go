package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hostalops-api/internal/application/dto"
	"github.com/jhoicas/hostalops-api/internal/application/forecast"
	"github.com/jhoicas/hostalops-api/internal/domain"
	"github.com/jhoicas/hostalops-api/pkg/config"
)

// ForecastHandler maneja los endpoints de pronóstico de ingresos.
type ForecastHandler struct {
	uc  *forecast.UseCase
	cfg config.AnalyticsConfig
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc *forecast.UseCase, cfg config.AnalyticsConfig) *ForecastHandler {
	return &ForecastHandler{uc: uc, cfg: cfg}
}

// forecastRequest parámetros de consulta de los endpoints de pronóstico.
type forecastRequest struct {
	Days int `query:"days"` // horizonte en días; default y tope desde configuración
}

// GetForecast godoc
// @Summary      Pronóstico de ingresos, COGS y utilidad
// @Description  Proyección diaria para el horizonte solicitado con ajuste
//               estacional por día de semana y crecimiento compuesto.
// @Tags         analytics
// @Produce      json
// @Param        days  query  int  false  "Días a proyectar (default 14, máx 90)."
// @Success      200  {object}  dto.ForecastDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/forecast [get]
func (h *ForecastHandler) GetForecast(c *fiber.Ctx) error {
	horizon, errResp := h.parseHorizon(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}

	result, err := h.uc.GetForecast(c.Context(), horizon)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(result)
}

// GetDepartmentForecasts devuelve el ranking de pronósticos por departamento,
// ordenado descendente por ingreso proyectado.
// GET /api/analytics/forecast/departments
func (h *ForecastHandler) GetDepartmentForecasts(c *fiber.Ctx) error {
	horizon, errResp := h.parseHorizon(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}

	result, err := h.uc.GetDepartmentForecasts(c.Context(), horizon)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(result)
}

// parseHorizon aplica default y tope al parámetro ?days=.
func (h *ForecastHandler) parseHorizon(c *fiber.Ctx) (int, *dto.ErrorResponse) {
	var req forecastRequest
	if err := c.QueryParser(&req); err != nil {
		return 0, &dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		}
	}

	horizon := req.Days
	if horizon == 0 {
		horizon = h.cfg.DefaultHorizon
	}
	if horizon < 0 {
		return 0, &dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "days debe ser mayor que 0",
		}
	}
	if horizon > h.cfg.MaxHorizon {
		horizon = h.cfg.MaxHorizon
	}
	return horizon, nil
}

// writeUseCaseError mapea errores del caso de uso al envoltorio HTTP:
// validación → 400, el resto → 500.
func writeUseCaseError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidHorizon) || errors.Is(err, domain.ErrInvalidPeriod) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "BAD_REQUEST", Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
