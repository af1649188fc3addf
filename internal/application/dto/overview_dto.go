package dto

// OverviewDTO respuesta de GET /api/analytics/overview: el dashboard completo
// en una sola llamada (pronóstico agregado, ranking por departamento y reporte
// estacional, calculados en paralelo sobre el mismo instante).
type OverviewDTO struct {
	Forecast    *ForecastDTO            `json:"forecast"`
	Departments []DepartmentForecastDTO `json:"departments"`
	Seasonality *SeasonalityReportDTO   `json:"seasonality"`
	GeneratedAt string                  `json:"generated_at"` // RFC 3339
}
