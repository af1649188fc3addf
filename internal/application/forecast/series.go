// Package forecast implementa el motor de pronóstico de ingresos: agregación
// diaria, primitivas estadísticas (media móvil, tasa de crecimiento, patrones
// por día de semana) y la proyección compuesta a futuro.
//
// Todas las funciones son puras y síncronas; operan sobre snapshots inmutables
// y nunca devuelven error ante entrada degenerada (serie vacía, denominadores
// en cero): la política es devolver valores de fallback documentados.
package forecast

import (
	"sort"
	"time"

	"github.com/jhoicas/hostalops-api/internal/domain/entity"
)

// fallbackCOGSRatio estimación de costo directo cuando el registro no trae
// COGS explícito: 30% del total. Valor histórico del sistema; no unificar con
// el 35% del análisis de estacionalidad (ver internal/application/seasonality).
const fallbackCOGSRatio = 0.30

// DailyObservation resume un día calendario: ingresos, costo directo y número
// de registros (órdenes/comandas/noches). Es la unidad de entrada de todas las
// primitivas del motor. Inmutable una vez construida.
type DailyObservation struct {
	Date       time.Time // medianoche del día calendario
	Revenue    float64
	COGS       float64
	OrderCount int
}

// BuildDailySeries agrupa registros crudos por día calendario del timestamp,
// sumando ingresos y COGS (real si viene en el registro, estimado al 30% si
// no) e incrementando el contador de órdenes por registro.
//
// La coerción numérica se centraliza aquí: montos negativos se tratan como 0,
// de modo que los componentes aguas abajo pueden asumir campos bien formados.
// Devuelve la serie ordenada ascendente por fecha. Entrada vacía → serie vacía.
func BuildDailySeries(records []entity.RevenueRecord) []DailyObservation {
	byDay := make(map[time.Time]*DailyObservation, len(records))

	for _, rec := range records {
		day := dayOf(rec.OccurredAt)

		obs, ok := byDay[day]
		if !ok {
			obs = &DailyObservation{Date: day}
			byDay[day] = obs
		}

		revenue := moneyValue(rec.Total.InexactFloat64())

		cogs := revenue * fallbackCOGSRatio
		if rec.COGS.Valid {
			cogs = moneyValue(rec.COGS.Decimal.InexactFloat64())
		}

		obs.Revenue += revenue
		obs.COGS += cogs
		obs.OrderCount++
	}

	series := make([]DailyObservation, 0, len(byDay))
	for _, obs := range byDay {
		series = append(series, *obs)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}

// dayOf normaliza un timestamp a la medianoche de su día calendario,
// conservando la zona horaria del registro.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// moneyValue coerción de montos: los negativos o mal formados entran como 0.
func moneyValue(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// sortSeries ordena una serie ascendente por fecha sin mutar la original.
// El motor la aplica de forma defensiva: ninguna función derivada puede asumir
// que el caller entregó la serie ordenada.
func sortSeries(series []DailyObservation) []DailyObservation {
	sorted := make([]DailyObservation, len(series))
	copy(sorted, series)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
