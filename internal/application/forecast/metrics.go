package forecast

import (
	"math"
	"time"
)

// Niveles de confianza del pronóstico. Es una clasificación gruesa por tamaño
// de muestra, no una probabilidad estadística.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Dirección de la tendencia reciente.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

const (
	growthWindow      = 7  // días por ventana al medir crecimiento semana contra semana
	minGrowthHistory  = 14 // mínimo de observaciones para calcular crecimiento
	highConfidenceMin = 30 // observaciones para confianza alta
	medConfidenceMin  = 14 // observaciones para confianza media
	trendBand         = 0.05
)

// MovingAverage devuelve la media aritmética de los últimos period elementos
// de la serie (o de toda la serie si es más corta). Serie vacía → 0.
func MovingAverage(series []float64, period int) float64 {
	if len(series) == 0 {
		return 0
	}
	if period > len(series) {
		period = len(series)
	}
	var sum float64
	for _, v := range series[len(series)-period:] {
		sum += v
	}
	return sum / float64(period)
}

// GrowthRate compara los ingresos de las últimas 7 observaciones contra las 7
// inmediatamente anteriores y devuelve el ratio (thisTotal-priorTotal)/priorTotal.
//
// Política de casos borde: con menos de 14 observaciones, o con total previo
// en 0, devuelve 0 (no es una falta de división por cero sino la convención
// "base cero = 0% de cambio").
func GrowthRate(series []DailyObservation) float64 {
	if len(series) < minGrowthHistory {
		return 0
	}

	var thisTotal, priorTotal float64
	for _, obs := range series[len(series)-growthWindow:] {
		thisTotal += obs.Revenue
	}
	for _, obs := range series[len(series)-2*growthWindow : len(series)-growthWindow] {
		priorTotal += obs.Revenue
	}

	if priorTotal == 0 {
		return 0
	}
	return (thisTotal - priorTotal) / priorTotal
}

// WeekdayPattern promedio histórico de un día de la semana.
type WeekdayPattern struct {
	AvgRevenue float64
	AvgOrders  float64
	Count      int // observaciones (días) en el bucket
}

// DayOfWeekPatterns agrupa la serie por día de la semana (0=domingo..6=sábado)
// y calcula el promedio de ingresos y de órdenes por día. Los 7 buckets
// existen siempre; un día sin datos queda con promedios en 0.
func DayOfWeekPatterns(series []DailyObservation) [7]WeekdayPattern {
	var totals [7]struct {
		revenue float64
		orders  int
		count   int
	}

	for _, obs := range series {
		wd := int(obs.Date.Weekday())
		totals[wd].revenue += obs.Revenue
		totals[wd].orders += obs.OrderCount
		totals[wd].count++
	}

	var patterns [7]WeekdayPattern
	for wd := range totals {
		patterns[wd].Count = totals[wd].count
		if totals[wd].count > 0 {
			patterns[wd].AvgRevenue = totals[wd].revenue / float64(totals[wd].count)
			patterns[wd].AvgOrders = float64(totals[wd].orders) / float64(totals[wd].count)
		}
	}
	return patterns
}

// ConfidenceLevel clasifica la confiabilidad del pronóstico según la cantidad
// de observaciones diarias disponibles: ≥30 alta, ≥14 media, si no baja.
func ConfidenceLevel(series []DailyObservation) string {
	switch {
	case len(series) >= highConfidenceMin:
		return ConfidenceHigh
	case len(series) >= medConfidenceMin:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// TrendDirection compara el promedio de los últimos 7 días contra el de los 7
// anteriores: cambio > +5% es "up", < −5% es "down", el resto "stable".
// Con menos de 7 observaciones, o con promedio anterior en 0, es "stable".
func TrendDirection(series []DailyObservation) string {
	if len(series) < growthWindow {
		return TrendStable
	}

	revenues := make([]float64, len(series))
	for i, obs := range series {
		revenues[i] = obs.Revenue
	}

	recent := MovingAverage(revenues, growthWindow)
	older := MovingAverage(revenues[:len(revenues)-growthWindow], growthWindow)
	if older == 0 {
		return TrendStable
	}

	change := (recent - older) / older
	switch {
	case change > trendBand:
		return TrendUp
	case change < -trendBand:
		return TrendDown
	default:
		return TrendStable
	}
}

// round2 redondea a 2 decimales. Se aplica solo al emitir valores monetarios,
// nunca en cálculos intermedios, para no acumular error de redondeo.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// dayOfWeekNames nombres de los días en orden domingo-primero, el orden
// posicional que esperan los consumidores del análisis.
var dayOfWeekNames = [7]string{
	time.Sunday.String(),
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
}
