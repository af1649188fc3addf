package dto

// ── Estacionalidad mensual/trimestral ────────────────────────────────────────

// MonthlySeasonDTO promedios históricos de un mes calendario (0=enero..11=diciembre).
// Las doce entradas existen siempre, con ceros si el mes no tiene datos.
type MonthlySeasonDTO struct {
	Month              int     `json:"month"` // 0–11
	MonthName          string  `json:"month_name"`
	AvgRevenue         float64 `json:"avg_revenue"`
	AvgOrders          float64 `json:"avg_orders"`
	AvgProfit          float64 `json:"avg_profit"`
	DataPoints         int     `json:"data_points"` // meses-año distintos observados
	SeasonType         string  `json:"season_type"` // peak|high|normal|low|off-peak
	PercentFromAverage float64 `json:"percent_from_average"`
}

// QuarterlySeasonDTO misma forma agregada por trimestre (Q1..Q4).
// Se deriva sumando los promedios de sus tres meses, no reconsultando registros.
type QuarterlySeasonDTO struct {
	Quarter            int     `json:"quarter"` // 0–3
	QuarterName        string  `json:"quarter_name"`
	AvgRevenue         float64 `json:"avg_revenue"`
	AvgOrders          float64 `json:"avg_orders"`
	AvgProfit          float64 `json:"avg_profit"`
	DataPoints         int     `json:"data_points"`
	SeasonType         string  `json:"season_type"`
	PercentFromAverage float64 `json:"percent_from_average"`
}

// MonthRevenueDTO par nombre de mes / ingreso promedio.
type MonthRevenueDTO struct {
	Name       string  `json:"name"`
	AvgRevenue float64 `json:"avg_revenue"`
}

// SeasonalityInsightDTO hallazgo cualitativo derivado de la descomposición.
type SeasonalityInsightDTO struct {
	Type        string   `json:"type"`   // peak|low|trend|opportunity
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"` // high|medium|low
	Months      []string `json:"months,omitempty"`
}

// SeasonalityMetricsDTO agregados derivados sobre los 12 meses / 4 trimestres.
type SeasonalityMetricsDTO struct {
	PeakMonths                []string                `json:"peak_months"`
	LowMonths                 []string                `json:"low_months"`
	PeakQuarter               string                  `json:"peak_quarter"`
	LowQuarter                string                  `json:"low_quarter"`
	SeasonalityIndex          float64                 `json:"seasonality_index"` // 0–100, CV escalado
	BestMonth                 MonthRevenueDTO         `json:"best_month"`
	WorstMonth                MonthRevenueDTO         `json:"worst_month"`
	PredictedNextMonthRevenue float64                 `json:"predicted_next_month_revenue"`
	Insights                  []SeasonalityInsightDTO `json:"insights"`
}

// SeasonalityReportDTO respuesta de GET /api/analytics/seasonality.
type SeasonalityReportDTO struct {
	MonthlyData   []MonthlySeasonDTO   `json:"monthly_data"`   // 12 entradas, enero-primero
	QuarterlyData []QuarterlySeasonDTO `json:"quarterly_data"` // 4 entradas
	Metrics       SeasonalityMetricsDTO `json:"metrics"`
}
