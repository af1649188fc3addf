package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hostalops-api/internal/application/analytics"
	"github.com/jhoicas/hostalops-api/internal/application/dto"
	"github.com/jhoicas/hostalops-api/internal/application/forecast"
	"github.com/jhoicas/hostalops-api/internal/application/seasonality"
	"github.com/jhoicas/hostalops-api/internal/domain/entity"
	apphttp "github.com/jhoicas/hostalops-api/internal/interfaces/http"
	"github.com/jhoicas/hostalops-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubRecordRepo repositorio en memoria compartido por todos los casos de uso
// del app de prueba.
type stubRecordRepo struct {
	records []entity.RevenueRecord
	err     error
}

func (s *stubRecordRepo) ListByPeriod(context.Context, time.Time, time.Time) ([]entity.RevenueRecord, error) {
	return s.records, s.err
}

var testAnalyticsCfg = config.AnalyticsConfig{
	LookbackDays:     90,
	DefaultHorizon:   14,
	MaxHorizon:       90,
	SeasonalityYears: 2,
	MaxYears:         5,
}

// buildTestApp arma la aplicación Fiber completa (router incluido) sobre el
// repositorio stub, igual que main pero sin Postgres.
func buildTestApp(repo *stubRecordRepo) *fiber.App {
	forecastUC := forecast.NewUseCase(repo, testAnalyticsCfg.LookbackDays)
	seasonalityUC := seasonality.NewUseCase(repo)
	overviewUC := analytics.NewOverviewUseCase(forecastUC, seasonalityUC)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ForecastUC:    forecastUC,
		SeasonalityUC: seasonalityUC,
		OverviewUC:    overviewUC,
		Analytics:     testAnalyticsCfg,
	})
	return app
}

// historyRecords n días consecutivos hacia atrás con un registro de total por día.
func historyRecords(n int, total float64) []entity.RevenueRecord {
	now := time.Now()
	records := make([]entity.RevenueRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, entity.RevenueRecord{
			ID:         "test",
			Department: entity.DepartmentRestaurant,
			OccurredAt: now.AddDate(0, 0, -i),
			Total:      decimal.NewFromFloat(total),
		})
	}
	return records
}

// doGet ejecuta la petición contra el app y decodifica el cuerpo JSON en out.
func doGet(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/analytics/forecast
// ──────────────────────────────────────────────────────────────────────────────

func TestGetForecast_HorizontePorDefecto(t *testing.T) {
	app := buildTestApp(&stubRecordRepo{records: historyRecords(30, 500)})

	var body dto.ForecastDTO
	status := doGet(t, app, "/api/analytics/forecast", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body.DailyProjections, testAnalyticsCfg.DefaultHorizon,
		"sin ?days= se proyecta el horizonte por defecto")
	assert.Equal(t, forecast.ConfidenceHigh, body.Confidence)
	assert.Positive(t, body.ProjectedRevenue)
}

func TestGetForecast_HorizonteExplicito(t *testing.T) {
	app := buildTestApp(&stubRecordRepo{records: historyRecords(30, 500)})

	var body dto.ForecastDTO
	status := doGet(t, app, "/api/analytics/forecast?days=7", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body.DailyProjections, 7)
}

func TestGetForecast_HorizonteTopado(t *testing.T) {
	app := buildTestApp(&stubRecordRepo{records: historyRecords(30, 500)})

	var body dto.ForecastDTO
	status := doGet(t, app, "/api/analytics/forecast?days=500", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body.DailyProjections, testAnalyticsCfg.MaxHorizon,
		"por encima del máximo se topa en silencio, no es error")
}

func TestGetForecast_DiasNegativos(t *testing.T) {
	app := buildTestApp(&stubRecordRepo{})

	var body dto.ErrorResponse
	status := doGet(t, app, "/api/analytics/forecast?days=-3", &body)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_PARAMS", body.Code)
}

func TestGetForecast_ErrorDeRepositorio(t *testing.T) {
	app := buildTestApp(&stubRecordRepo{err: errors.New("conexión perdida")})

	var body dto.ErrorResponse
	status := doGet(t, app, "/api/analytics/forecast", &body)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/analytics/forecast/departments
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDepartmentForecasts(t *testing.T) {
	// Historial repartido entre todos los departamentos conocidos
	records := historyRecords(20, 500)
	for i := range records {
		records[i].Department = entity.AllDepartments[i%len(entity.AllDepartments)]
	}
	app := buildTestApp(&stubRecordRepo{records: records})

	var body []dto.DepartmentForecastDTO
	status := doGet(t, app, "/api/analytics/forecast/departments", &body)

	assert.Equal(t, http.StatusOK, status)
	require.Len(t, body, len(entity.AllDepartments))
	for i := 1; i < len(body); i++ {
		assert.GreaterOrEqual(t, body[i-1].ProjectedRevenue, body[i].ProjectedRevenue,
			"el ranking llega ordenado descendente")
	}
}

func TestGetDepartmentForecasts_SinHistorial(t *testing.T) {
	app := buildTestApp(&stubRecordRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/analytics/forecast/departments", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.JSONEq(t, "[]", string(raw), "lista vacía, nunca null")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/analytics/seasonality
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSeasonality(t *testing.T) {
	app := buildTestApp(&stubRecordRepo{records: historyRecords(30, 500)})

	var body dto.SeasonalityReportDTO
	status := doGet(t, app, "/api/analytics/seasonality", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body.MonthlyData, 12)
	assert.Len(t, body.QuarterlyData, 4)
	assert.Equal(t, "January", body.MonthlyData[0].MonthName,
		"monthly_data es posicional enero-primero")
}

func TestGetSeasonality_AniosNegativos(t *testing.T) {
	app := buildTestApp(&stubRecordRepo{})

	var body dto.ErrorResponse
	status := doGet(t, app, "/api/analytics/seasonality?years=-1", &body)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_PARAMS", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/analytics/overview
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOverview(t *testing.T) {
	app := buildTestApp(&stubRecordRepo{records: historyRecords(30, 500)})

	var body dto.OverviewDTO
	status := doGet(t, app, "/api/analytics/overview", &body)

	assert.Equal(t, http.StatusOK, status)
	require.NotNil(t, body.Forecast)
	require.NotNil(t, body.Seasonality)
	assert.Len(t, body.Forecast.DailyProjections, testAnalyticsCfg.DefaultHorizon)
	assert.Len(t, body.Seasonality.MonthlyData, 12)
	assert.NotEmpty(t, body.GeneratedAt)
}
