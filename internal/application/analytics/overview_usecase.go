// Package analytics compone los casos de uso de pronóstico y estacionalidad
// en el resumen único que consume el dashboard operativo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/hostalops-api/internal/application/dto"
)

// ForecastProvider subconjunto del caso de uso de pronóstico que necesita el
// overview. Se define aquí (lado consumidor) para poder stubear en tests.
type ForecastProvider interface {
	GetForecast(ctx context.Context, horizonDays int) (*dto.ForecastDTO, error)
	GetDepartmentForecasts(ctx context.Context, horizonDays int) ([]dto.DepartmentForecastDTO, error)
}

// SeasonalityProvider subconjunto del caso de uso de estacionalidad.
type SeasonalityProvider interface {
	GetSeasonality(ctx context.Context, yearsBack int) (*dto.SeasonalityReportDTO, error)
}

// OverviewUseCase arma el dashboard: pronóstico agregado, ranking por
// departamento y reporte estacional en una sola respuesta.
type OverviewUseCase struct {
	forecasts   ForecastProvider
	seasonality SeasonalityProvider
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(f ForecastProvider, s SeasonalityProvider) *OverviewUseCase {
	return &OverviewUseCase{forecasts: f, seasonality: s}
}

// GetOverview ejecuta las tres consultas en paralelo (son independientes entre
// sí; cada una hace su propio fetch de historial) y combina los resultados.
func (uc *OverviewUseCase) GetOverview(
	ctx context.Context,
	horizonDays, seasonalityYears int,
) (*dto.OverviewDTO, error) {
	type forecastResult struct {
		forecast *dto.ForecastDTO
		err      error
	}
	type departmentsResult struct {
		departments []dto.DepartmentForecastDTO
		err         error
	}
	type seasonalityResult struct {
		report *dto.SeasonalityReportDTO
		err    error
	}

	forecastCh := make(chan forecastResult, 1)
	departmentsCh := make(chan departmentsResult, 1)
	seasonalityCh := make(chan seasonalityResult, 1)

	go func() {
		f, err := uc.forecasts.GetForecast(ctx, horizonDays)
		forecastCh <- forecastResult{f, err}
	}()
	go func() {
		d, err := uc.forecasts.GetDepartmentForecasts(ctx, horizonDays)
		departmentsCh <- departmentsResult{d, err}
	}()
	go func() {
		s, err := uc.seasonality.GetSeasonality(ctx, seasonalityYears)
		seasonalityCh <- seasonalityResult{s, err}
	}()

	forecast := <-forecastCh
	departments := <-departmentsCh
	season := <-seasonalityCh

	if forecast.err != nil {
		return nil, fmt.Errorf("overview: pronóstico: %w", forecast.err)
	}
	if departments.err != nil {
		return nil, fmt.Errorf("overview: departamentos: %w", departments.err)
	}
	if season.err != nil {
		return nil, fmt.Errorf("overview: estacionalidad: %w", season.err)
	}

	return &dto.OverviewDTO{
		Forecast:    forecast.forecast,
		Departments: departments.departments,
		Seasonality: season.report,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}, nil
}
