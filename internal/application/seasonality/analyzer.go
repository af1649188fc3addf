// Package seasonality implementa la descomposición estacional mensual y
// trimestral del ingreso histórico, con clasificación por niveles (peak, high,
// normal, low, off-peak) y derivación de hallazgos cualitativos.
//
// Trabaja sobre los registros crudos con granularidad mensual, en paralelo e
// independiente del motor diario de internal/application/forecast. Igual que
// aquel, es puro y nunca devuelve error: la entrada degenerada produce valores
// de fallback (índice 0, porcentajes 0).
package seasonality

import (
	"math"
	"time"

	"github.com/jhoicas/hostalops-api/internal/application/dto"
	"github.com/jhoicas/hostalops-api/internal/domain/entity"
)

// profitCOGSRatio estimación de costo usada SOLO por este análisis: 35% del
// ingreso del registro. No coincide con el 30% del agregador diario y esa
// divergencia se conserva a propósito; unificarla cambiaría series históricas
// que los consumidores ya comparan período a período.
const profitCOGSRatio = 0.35

// Niveles de estacionalidad.
const (
	SeasonPeak    = "peak"
	SeasonHigh    = "high"
	SeasonNormal  = "normal"
	SeasonLow     = "low"
	SeasonOffPeak = "off-peak"
)

// Umbrales mensuales (% de desvío sobre el promedio general).
const (
	monthPeakPct = 20
	monthHighPct = 10
	monthLowPct  = -10
	monthOffPct  = -20
)

// Umbrales trimestrales, más estrechos: al agregar tres meses el desvío
// relativo se suaviza.
const (
	quarterPeakPct = 15
	quarterHighPct = 5
	quarterLowPct  = -5
	quarterOffPct  = -15
)

// monthBucket acumuladores de un mes calendario (todas las ocurrencias del
// mes a lo largo de los años consultados).
type monthBucket struct {
	revenue    float64
	orders     int
	profit     float64
	yearMonths map[int]struct{} // claves año*100+mes: meses-año distintos con datos
}

// Analyze agrupa los registros por mes calendario (0–11) sin distinguir año,
// promedia por cantidad de meses-año observados (dataPoints, no por registros
// ni por días del mes) y clasifica cada mes y trimestre contra el promedio
// general. now solo se usa para la predicción ingenua del mes siguiente.
func Analyze(records []entity.RevenueRecord, now time.Time) *dto.SeasonalityReportDTO {
	var buckets [12]monthBucket
	for m := range buckets {
		buckets[m].yearMonths = make(map[int]struct{})
	}

	for _, rec := range records {
		m := int(rec.OccurredAt.Month()) - 1
		revenue := rec.Total.InexactFloat64()
		if revenue < 0 {
			revenue = 0
		}
		tax := rec.Tax.InexactFloat64()

		buckets[m].revenue += revenue
		buckets[m].orders++
		buckets[m].profit += revenue - revenue*profitCOGSRatio - tax
		buckets[m].yearMonths[rec.OccurredAt.Year()*100+m] = struct{}{}
	}

	// ── Promedios mensuales ───────────────────────────────────────────────────
	monthly := make([]dto.MonthlySeasonDTO, 12)
	var monthlyAvgs [12]float64
	for m := range buckets {
		points := len(buckets[m].yearMonths)
		var avgRevenue, avgOrders, avgProfit float64
		if points > 0 {
			avgRevenue = buckets[m].revenue / float64(points)
			avgOrders = float64(buckets[m].orders) / float64(points)
			avgProfit = buckets[m].profit / float64(points)
		}
		monthlyAvgs[m] = avgRevenue
		monthly[m] = dto.MonthlySeasonDTO{
			Month:      m,
			MonthName:  time.Month(m + 1).String(),
			AvgRevenue: round2(avgRevenue),
			AvgOrders:  round2(avgOrders),
			AvgProfit:  round2(avgProfit),
			DataPoints: points,
		}
	}

	// Promedio general = media de los doce promedios mensuales (incluye los
	// meses en cero), no media plana sobre los registros.
	var grandAvg float64
	for _, avg := range monthlyAvgs {
		grandAvg += avg
	}
	grandAvg /= 12

	for m := range monthly {
		pct := percentFrom(monthlyAvgs[m], grandAvg)
		monthly[m].PercentFromAverage = round2(pct)
		monthly[m].SeasonType = MonthSeasonType(pct)
	}

	// ── Trimestres: derivados de los promedios mensuales, no de registros ────
	quarterly := make([]dto.QuarterlySeasonDTO, 4)
	var quarterlyAvgs [4]float64
	for q := 0; q < 4; q++ {
		var revenue, orders, profit float64
		points := 0
		for m := q * 3; m < q*3+3; m++ {
			revenue += monthlyAvgs[m]
			orders += monthly[m].AvgOrders
			profit += monthly[m].AvgProfit
			points += monthly[m].DataPoints
		}
		quarterlyAvgs[q] = revenue
		quarterly[q] = dto.QuarterlySeasonDTO{
			Quarter:     q,
			QuarterName: quarterNames[q],
			AvgRevenue:  round2(revenue),
			AvgOrders:   round2(orders),
			AvgProfit:   round2(profit),
			DataPoints:  points,
		}
	}

	var grandQuarterAvg float64
	for _, avg := range quarterlyAvgs {
		grandQuarterAvg += avg
	}
	grandQuarterAvg /= 4

	for q := range quarterly {
		pct := percentFrom(quarterlyAvgs[q], grandQuarterAvg)
		quarterly[q].PercentFromAverage = round2(pct)
		quarterly[q].SeasonType = QuarterSeasonType(pct)
	}

	metrics := buildMetrics(monthly, quarterly, monthlyAvgs, grandAvg, now)

	return &dto.SeasonalityReportDTO{
		MonthlyData:   monthly,
		QuarterlyData: quarterly,
		Metrics:       metrics,
	}
}

var quarterNames = [4]string{"Q1", "Q2", "Q3", "Q4"}

// percentFrom desvío porcentual de value sobre baseline; baseline 0 → 0.
func percentFrom(value, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (value - baseline) / baseline * 100
}

// MonthSeasonType clasifica un mes por su desvío porcentual:
// ≥+20 peak, ≥+10 high, ≥−10 normal, ≥−20 low, resto off-peak.
// Función pura de un valor ya calculado; nunca mira registros crudos.
func MonthSeasonType(pct float64) string {
	switch {
	case pct >= monthPeakPct:
		return SeasonPeak
	case pct >= monthHighPct:
		return SeasonHigh
	case pct >= monthLowPct:
		return SeasonNormal
	case pct >= monthOffPct:
		return SeasonLow
	default:
		return SeasonOffPeak
	}
}

// QuarterSeasonType clasifica un trimestre con umbrales más estrechos:
// ≥+15 peak, ≥+5 high, ≥−5 normal, ≥−15 low, resto off-peak.
func QuarterSeasonType(pct float64) string {
	switch {
	case pct >= quarterPeakPct:
		return SeasonPeak
	case pct >= quarterHighPct:
		return SeasonHigh
	case pct >= quarterLowPct:
		return SeasonNormal
	case pct >= quarterOffPct:
		return SeasonLow
	default:
		return SeasonOffPeak
	}
}

// buildMetrics deriva los agregados: listas de meses pico/valle, trimestres
// extremos, índice de estacionalidad (coeficiente de variación escalado a
// 0–100), mejor/peor mes y la predicción ingenua del mes entrante.
func buildMetrics(
	monthly []dto.MonthlySeasonDTO,
	quarterly []dto.QuarterlySeasonDTO,
	monthlyAvgs [12]float64,
	grandAvg float64,
	now time.Time,
) dto.SeasonalityMetricsDTO {
	peakMonths := make([]string, 0, 4)
	lowMonths := make([]string, 0, 4)
	for _, m := range monthly {
		switch m.SeasonType {
		case SeasonPeak, SeasonHigh:
			peakMonths = append(peakMonths, m.MonthName)
		case SeasonLow, SeasonOffPeak:
			lowMonths = append(lowMonths, m.MonthName)
		}
	}

	var peakQuarter, lowQuarter string
	if grandAvg > 0 {
		maxQ, minQ := 0, 0
		for q := 1; q < len(quarterly); q++ {
			if quarterly[q].AvgRevenue > quarterly[maxQ].AvgRevenue {
				maxQ = q
			}
			if quarterly[q].AvgRevenue < quarterly[minQ].AvgRevenue {
				minQ = q
			}
		}
		peakQuarter = quarterly[maxQ].QuarterName
		lowQuarter = quarterly[minQ].QuarterName
	}

	// Índice 0–100: coeficiente de variación de los promedios mensuales,
	// escalado ×2 para que una variación del 50% sature la escala.
	var index float64
	if grandAvg > 0 {
		var sumSq float64
		for _, avg := range monthlyAvgs {
			d := avg - grandAvg
			sumSq += d * d
		}
		stdDev := math.Sqrt(sumSq / 12)
		index = math.Min(100, stdDev/grandAvg*100*2)
	}

	// Mejor/peor mes solo entre los que tienen datos; con historial vacío
	// ambos quedan en cero.
	var best, worst dto.MonthRevenueDTO
	first := true
	for _, m := range monthly {
		if m.DataPoints == 0 {
			continue
		}
		if first || m.AvgRevenue > best.AvgRevenue {
			best = dto.MonthRevenueDTO{Name: m.MonthName, AvgRevenue: m.AvgRevenue}
		}
		if first || m.AvgRevenue < worst.AvgRevenue {
			worst = dto.MonthRevenueDTO{Name: m.MonthName, AvgRevenue: m.AvgRevenue}
		}
		first = false
	}

	// Predicción ingenua: promedio histórico del mes calendario entrante;
	// sin historial para ese mes, el promedio general.
	nextMonth := int(now.Month()) % 12
	predicted := grandAvg
	if monthly[nextMonth].DataPoints > 0 {
		predicted = monthlyAvgs[nextMonth]
	}

	return dto.SeasonalityMetricsDTO{
		PeakMonths:                peakMonths,
		LowMonths:                 lowMonths,
		PeakQuarter:               peakQuarter,
		LowQuarter:                lowQuarter,
		SeasonalityIndex:          round2(index),
		BestMonth:                 best,
		WorstMonth:                worst,
		PredictedNextMonthRevenue: round2(predicted),
		Insights:                  deriveInsights(peakMonths, lowMonths, index, best, worst),
	}
}

// round2 redondeo a 2 decimales al emitir valores, nunca en cálculos intermedios.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
