package forecast

import (
	"sort"
	"time"

	"github.com/jhoicas/hostalops-api/internal/application/dto"
	"github.com/jhoicas/hostalops-api/internal/domain/entity"
)

// DepartmentForecasts corre el pipeline completo de pronóstico de forma
// independiente por departamento y devuelve la lista ordenada descendente por
// ingreso proyectado (empate: orden alfabético, para un ranking determinista).
//
// Un departamento sin observaciones igual recibe su entrada, con cifras en 0 y
// confianza "low". Mapa vacío → lista vacía (no nil).
func DepartmentForecasts(
	perDepartment map[entity.Department][]DailyObservation,
	horizonDays int,
	now time.Time,
) []dto.DepartmentForecastDTO {
	results := make([]dto.DepartmentForecastDTO, 0, len(perDepartment))

	for dept, series := range perDepartment {
		f := Generate(series, horizonDays, now)

		var currentRevenue float64
		for _, obs := range series {
			currentRevenue += obs.Revenue
		}

		results = append(results, dto.DepartmentForecastDTO{
			Department:       string(dept),
			CurrentRevenue:   round2(currentRevenue),
			ProjectedRevenue: f.ProjectedRevenue,
			GrowthRate:       f.GrowthRate,
			Confidence:       f.Confidence,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].ProjectedRevenue != results[j].ProjectedRevenue {
			return results[i].ProjectedRevenue > results[j].ProjectedRevenue
		}
		return results[i].Department < results[j].Department
	})
	return results
}

// GroupByDepartment separa registros crudos por departamento, preservando el
// orden de llegada dentro de cada grupo.
func GroupByDepartment(records []entity.RevenueRecord) map[entity.Department][]entity.RevenueRecord {
	grouped := make(map[entity.Department][]entity.RevenueRecord)
	for _, rec := range records {
		grouped[rec.Department] = append(grouped[rec.Department], rec)
	}
	return grouped
}
