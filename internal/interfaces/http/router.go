package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hostalops-api/internal/application/analytics"
	"github.com/jhoicas/hostalops-api/internal/application/forecast"
	"github.com/jhoicas/hostalops-api/internal/application/seasonality"
	"github.com/jhoicas/hostalops-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ForecastUC    *forecast.UseCase
	SeasonalityUC *seasonality.UseCase
	OverviewUC    *analytics.OverviewUseCase
	Analytics     config.AnalyticsConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Analítica (lectura pura; la autenticación vive en el gateway, fuera de
	// este servicio)
	analyticsGroup := api.Group("/analytics")

	forecastHandler := NewForecastHandler(deps.ForecastUC, deps.Analytics)
	analyticsGroup.Get("/forecast", forecastHandler.GetForecast)
	analyticsGroup.Get("/forecast/departments", forecastHandler.GetDepartmentForecasts)

	seasonalityHandler := NewSeasonalityHandler(deps.SeasonalityUC, deps.Analytics)
	analyticsGroup.Get("/seasonality", seasonalityHandler.GetSeasonality)

	overviewHandler := NewOverviewHandler(deps.OverviewUC, deps.Analytics)
	analyticsGroup.Get("/overview", overviewHandler.GetOverview)
}
