package dto

// ── Pronóstico agregado ───────────────────────────────────────────────────────

// DailyProjectionDTO proyección de un día futuro del horizonte.
type DailyProjectionDTO struct {
	Date    string  `json:"date"`    // día ISO (YYYY-MM-DD)
	Revenue float64 `json:"revenue"` // redondeado a 2 decimales
	COGS    float64 `json:"cogs"`
	Profit  float64 `json:"profit"`
}

// WeekdayAnalysisDTO promedio histórico de un día de la semana.
// La lista completa va en orden domingo-primero; los consumidores dependen
// de la posición, no del nombre.
type WeekdayAnalysisDTO struct {
	Day        string  `json:"day"`
	AvgRevenue float64 `json:"avg_revenue"`
	AvgOrders  float64 `json:"avg_orders"`
}

// ForecastDTO respuesta de GET /api/analytics/forecast.
//
// Los totales proyectados se redondean una sola vez al final sobre los
// acumulados sin redondear; cada entrada diaria se redondea por separado.
// Ambos son intencionales: el total puede diferir en un centavo de la suma de
// las entradas diarias y los consumidores NO deben rederivar uno del otro.
type ForecastDTO struct {
	ProjectedRevenue  float64              `json:"projected_revenue"`
	ProjectedCOGS     float64              `json:"projected_cogs"`
	ProjectedProfit   float64              `json:"projected_profit"`
	Confidence        string               `json:"confidence"`       // high|medium|low
	TrendDirection    string               `json:"trend_direction"`  // up|down|stable
	GrowthRate        float64              `json:"growth_rate"`      // porcentaje, 2 decimales
	DailyProjections  []DailyProjectionDTO `json:"daily_projections"`
	DayOfWeekAnalysis []WeekdayAnalysisDTO `json:"day_of_week_analysis"`
}

// ── Por departamento ──────────────────────────────────────────────────────────

// DepartmentForecastDTO pronóstico independiente de un departamento.
// La lista va ordenada descendente por ingreso proyectado.
type DepartmentForecastDTO struct {
	Department       string  `json:"department"`
	CurrentRevenue   float64 `json:"current_revenue"` // suma histórica sin ponderar
	ProjectedRevenue float64 `json:"projected_revenue"`
	GrowthRate       float64 `json:"growth_rate"`
	Confidence       string  `json:"confidence"`
}
