package forecast

import (
	"math"
	"time"

	"github.com/jhoicas/hostalops-api/internal/application/dto"
)

// Generate proyecta ingresos, COGS y utilidad para los próximos horizonDays
// días a partir de la serie diaria histórica. El primer día proyectado es
// "mañana" respecto de now (offset +1, nunca +0).
//
// Por cada día futuro i:
//
//	base = mediaMóvil7(ingresos) × (1 + tasa/7)^i
//
// La tasa semanal se reparte en los 7 días sobre los que se midió, compuesta
// diariamente, para una rampa suave. Si el día de la semana destino tiene
// promedio histórico > 0 y el promedio global > 0, se aplica el multiplicador
// estacional promedioDía/promedioGlobal. El resultado nunca es negativo.
//
// Entrada degenerada: con serie vacía el mismo recorrido produce un pronóstico
// en ceros con confianza "low" y tendencia "stable"; dailyProjections mantiene
// siempre exactamente horizonDays entradas.
func Generate(series []DailyObservation, horizonDays int, now time.Time) *dto.ForecastDTO {
	series = sortSeries(series)

	revenues := make([]float64, len(series))
	cogsValues := make([]float64, len(series))
	var revenueSum float64
	for i, obs := range series {
		revenues[i] = obs.Revenue
		cogsValues[i] = obs.COGS
		revenueSum += obs.Revenue
	}

	avgRevenue := MovingAverage(revenues, growthWindow)
	avgCOGS := MovingAverage(cogsValues, growthWindow)
	rate := GrowthRate(series)
	patterns := DayOfWeekPatterns(series)
	confidence := ConfidenceLevel(series)
	trend := TrendDirection(series)

	// Media global de toda la serie (no móvil): solo se usa como denominador
	// de normalización del multiplicador por día de semana.
	var overallAvgRevenue float64
	if len(series) > 0 {
		overallAvgRevenue = revenueSum / float64(len(series))
	}

	cogsRatio := fallbackCOGSRatio
	if avgRevenue > 0 {
		cogsRatio = avgCOGS / avgRevenue
	}

	today := dayOf(now)
	dailyGrowth := 1 + rate/float64(growthWindow)

	projections := make([]dto.DailyProjectionDTO, 0, horizonDays)
	var totalRevenue, totalCOGS float64

	for i := 1; i <= horizonDays; i++ {
		date := today.AddDate(0, 0, i)

		base := avgRevenue * math.Pow(dailyGrowth, float64(i))

		if wd := patterns[int(date.Weekday())]; wd.AvgRevenue > 0 && overallAvgRevenue > 0 {
			base *= wd.AvgRevenue / overallAvgRevenue
		}

		projRevenue := math.Max(0, base)
		projCOGS := projRevenue * cogsRatio

		projections = append(projections, dto.DailyProjectionDTO{
			Date:    date.Format("2006-01-02"),
			Revenue: round2(projRevenue),
			COGS:    round2(projCOGS),
			Profit:  round2(projRevenue - projCOGS),
		})

		// Los totales acumulan los valores SIN redondear y se redondean una
		// sola vez al final; pueden diferir en un centavo de la suma de las
		// entradas diarias redondeadas y eso es intencional.
		totalRevenue += projRevenue
		totalCOGS += projCOGS
	}

	analysis := make([]dto.WeekdayAnalysisDTO, 0, len(patterns))
	for wd, p := range patterns {
		analysis = append(analysis, dto.WeekdayAnalysisDTO{
			Day:        dayOfWeekNames[wd],
			AvgRevenue: round2(p.AvgRevenue),
			AvgOrders:  round2(p.AvgOrders),
		})
	}

	return &dto.ForecastDTO{
		ProjectedRevenue:  round2(totalRevenue),
		ProjectedCOGS:     round2(totalCOGS),
		ProjectedProfit:   round2(totalRevenue - totalCOGS),
		Confidence:        confidence,
		TrendDirection:    trend,
		GrowthRate:        round2(rate * 100),
		DailyProjections:  projections,
		DayOfWeekAnalysis: analysis,
	}
}
