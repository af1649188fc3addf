package seasonality

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/hostalops-api/internal/application/dto"
)

// Impacto de un hallazgo.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Tipos de hallazgo.
const (
	InsightPeak        = "peak"
	InsightLow         = "low"
	InsightTrend       = "trend"
	InsightOpportunity = "opportunity"
)

// highVariationIndex índice a partir del cual la variación estacional amerita
// su propio hallazgo.
const highVariationIndex = 30

// revenueGapRatio ratio mejor/peor mes a partir del cual hay una brecha de
// ingresos accionable.
const revenueGapRatio = 2.0

// moneyPrinter formatea montos con separador de miles para las descripciones
// (los valores numéricos del reporte van aparte, sin formatear).
var moneyPrinter = message.NewPrinter(language.English)

// deriveInsights produce la lista ordenada de hallazgos. Cada regla se agrega
// solo si su condición se cumple; el orden es fijo: temporada alta, temporada
// baja, variación estacional, brecha de ingresos.
func deriveInsights(
	peakMonths, lowMonths []string,
	index float64,
	best, worst dto.MonthRevenueDTO,
) []dto.SeasonalityInsightDTO {
	insights := make([]dto.SeasonalityInsightDTO, 0, 4)

	if len(peakMonths) > 0 {
		insights = append(insights, dto.SeasonalityInsightDTO{
			Type:  InsightPeak,
			Title: "Peak Season",
			Description: fmt.Sprintf(
				"Demand runs well above the yearly average in %s. Plan staffing and inventory ahead of these months.",
				joinMonths(peakMonths),
			),
			Impact: ImpactHigh,
			Months: peakMonths,
		})
	}

	if len(lowMonths) > 0 {
		insights = append(insights, dto.SeasonalityInsightDTO{
			Type:  InsightLow,
			Title: "Off-Peak Season",
			Description: fmt.Sprintf(
				"Revenue drops noticeably in %s. Consider promotions or reduced operating costs during these months.",
				joinMonths(lowMonths),
			),
			Impact: ImpactMedium,
			Months: lowMonths,
		})
	}

	if index > highVariationIndex {
		insights = append(insights, dto.SeasonalityInsightDTO{
			Type:  InsightTrend,
			Title: "High Seasonal Variation",
			Description: fmt.Sprintf(
				"Monthly revenue varies strongly across the year (seasonality index %.0f/100). Cash flow planning should account for the swings.",
				index,
			),
			Impact: ImpactHigh,
		})
	}

	if best.AvgRevenue > 0 && worst.AvgRevenue > 0 && best.AvgRevenue/worst.AvgRevenue > revenueGapRatio {
		ratio := best.AvgRevenue / worst.AvgRevenue
		insights = append(insights, dto.SeasonalityInsightDTO{
			Type:  InsightOpportunity,
			Title: "Revenue Gap Opportunity",
			Description: moneyPrinter.Sprintf(
				"%s generates %.1fx the revenue of %s ($%v vs $%v on average). Closing part of that gap is the largest single upside in the calendar.",
				best.Name, ratio, worst.Name,
				number.Decimal(best.AvgRevenue, number.MaxFractionDigits(0)),
				number.Decimal(worst.AvgRevenue, number.MaxFractionDigits(0)),
			),
			Impact: ImpactMedium,
		})
	}

	return insights
}

// joinMonths "June", "June and July", "June, July and August".
func joinMonths(months []string) string {
	switch len(months) {
	case 1:
		return months[0]
	default:
		return strings.Join(months[:len(months)-1], ", ") + " and " + months[len(months)-1]
	}
}
