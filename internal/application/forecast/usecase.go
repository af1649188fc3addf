package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/hostalops-api/internal/application/dto"
	"github.com/jhoicas/hostalops-api/internal/domain"
	"github.com/jhoicas/hostalops-api/internal/domain/entity"
	"github.com/jhoicas/hostalops-api/internal/domain/repository"
)

// UseCase orquesta el pronóstico: trae el historial vía repositorio (un único
// fetch bloqueante), construye la serie diaria y corre el motor. El estado
// derivado nunca se persiste; cada invocación recalcula desde cero.
type UseCase struct {
	recordRepo   repository.RevenueRecordRepository
	lookbackDays int
}

// NewUseCase construye el caso de uso. lookbackDays define la ventana de
// historial diario a considerar (ej. 90).
func NewUseCase(recordRepo repository.RevenueRecordRepository, lookbackDays int) *UseCase {
	return &UseCase{recordRepo: recordRepo, lookbackDays: lookbackDays}
}

// GetForecast genera el pronóstico agregado (todos los departamentos sumados)
// para los próximos horizonDays días.
func (uc *UseCase) GetForecast(ctx context.Context, horizonDays int) (*dto.ForecastDTO, error) {
	if horizonDays <= 0 {
		return nil, fmt.Errorf("%w: %d días", domain.ErrInvalidHorizon, horizonDays)
	}

	now := time.Now()
	records, err := uc.recordRepo.ListByPeriod(ctx, now.AddDate(0, 0, -uc.lookbackDays), now)
	if err != nil {
		return nil, fmt.Errorf("forecast: historial de ingresos: %w", err)
	}

	return Generate(BuildDailySeries(records), horizonDays, now), nil
}

// GetDepartmentForecasts genera el ranking de pronósticos por departamento.
// Un solo fetch; la partición por departamento ocurre en memoria.
func (uc *UseCase) GetDepartmentForecasts(ctx context.Context, horizonDays int) ([]dto.DepartmentForecastDTO, error) {
	if horizonDays <= 0 {
		return nil, fmt.Errorf("%w: %d días", domain.ErrInvalidHorizon, horizonDays)
	}

	now := time.Now()
	records, err := uc.recordRepo.ListByPeriod(ctx, now.AddDate(0, 0, -uc.lookbackDays), now)
	if err != nil {
		return nil, fmt.Errorf("forecast: historial por departamento: %w", err)
	}

	perDept := make(map[entity.Department][]DailyObservation)
	for dept, recs := range GroupByDepartment(records) {
		perDept[dept] = BuildDailySeries(recs)
	}

	return DepartmentForecasts(perDept, horizonDays, now), nil
}
