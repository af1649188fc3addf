package seasonality_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hostalops-api/internal/application/seasonality"
	"github.com/jhoicas/hostalops-api/internal/domain/entity"
)

// TestInsights_TemporadaMarcada un año con verano fuerte (junio 10000, julio
// 9000) contra 1000 el resto dispara los cuatro hallazgos en su orden fijo:
// temporada alta, temporada baja, variación estacional y brecha de ingresos.
func TestInsights_TemporadaMarcada(t *testing.T) {
	revenues := [12]float64{
		1000, 1000, 1000, 1000, 1000, 10000,
		9000, 1000, 1000, 1000, 1000, 1000,
	}
	report := seasonality.Analyze(oneRecordPerMonth(2025, revenues), testNow)

	insights := report.Metrics.Insights
	require.Len(t, insights, 4)

	peak := insights[0]
	assert.Equal(t, seasonality.InsightPeak, peak.Type)
	assert.Equal(t, seasonality.ImpactHigh, peak.Impact)
	assert.Equal(t, []string{"June", "July"}, peak.Months,
		"los meses pico salen en orden calendario")
	assert.Contains(t, peak.Description, "June and July")

	low := insights[1]
	assert.Equal(t, seasonality.InsightLow, low.Type)
	assert.Equal(t, seasonality.ImpactMedium, low.Impact)
	assert.Len(t, low.Months, 10)
	assert.Equal(t, "January", low.Months[0])
	assert.Equal(t, "December", low.Months[9])

	trend := insights[2]
	assert.Equal(t, seasonality.InsightTrend, trend.Type)
	assert.Equal(t, seasonality.ImpactHigh, trend.Impact)
	assert.Empty(t, trend.Months)

	opportunity := insights[3]
	assert.Equal(t, seasonality.InsightOpportunity, opportunity.Type)
	assert.Equal(t, seasonality.ImpactMedium, opportunity.Impact)
	assert.Contains(t, opportunity.Description, "10.0x",
		"el ratio mejor/peor mes va con un decimal")
	assert.Contains(t, opportunity.Description, "10,000",
		"los montos llevan separador de miles")
	assert.Contains(t, opportunity.Description, "June")
	assert.Contains(t, opportunity.Description, "January",
		"a igual promedio mínimo gana el primer mes del calendario")
}

// TestInsights_BrechaJustoEnElUmbral un ratio de exactamente 2.0 no alcanza:
// la brecha debe superar el doble, no igualarlo.
func TestInsights_BrechaJustoEnElUmbral(t *testing.T) {
	records := []entity.RevenueRecord{
		record(2025, time.April, 10, 2000),
		record(2025, time.October, 10, 1000),
	}
	report := seasonality.Analyze(records, testNow)

	for _, ins := range report.Metrics.Insights {
		assert.NotEqual(t, seasonality.InsightOpportunity, ins.Type,
			"2000/1000 = 2.0 exacto no dispara la brecha")
	}
}

// TestInsights_VariacionModerada con una variación suave no aparecen ni el
// hallazgo de variación ni el de brecha.
func TestInsights_VariacionModerada(t *testing.T) {
	revenues := [12]float64{
		1000, 1020, 980, 1010, 990, 1030,
		970, 1000, 1015, 985, 1005, 995,
	}
	report := seasonality.Analyze(oneRecordPerMonth(2025, revenues), testNow)

	assert.LessOrEqual(t, report.Metrics.SeasonalityIndex, 30.0)
	for _, ins := range report.Metrics.Insights {
		assert.NotEqual(t, seasonality.InsightTrend, ins.Type)
		assert.NotEqual(t, seasonality.InsightOpportunity, ins.Type)
	}
}
