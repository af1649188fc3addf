package seasonality

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/hostalops-api/internal/application/dto"
	"github.com/jhoicas/hostalops-api/internal/domain"
	"github.com/jhoicas/hostalops-api/internal/domain/repository"
)

// UseCase orquesta el análisis de estacionalidad: un fetch del historial y la
// descomposición en memoria. Sin estado entre invocaciones.
type UseCase struct {
	recordRepo repository.RevenueRecordRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(recordRepo repository.RevenueRecordRepository) *UseCase {
	return &UseCase{recordRepo: recordRepo}
}

// GetSeasonality genera el reporte estacional con yearsBack años de historial.
func (uc *UseCase) GetSeasonality(ctx context.Context, yearsBack int) (*dto.SeasonalityReportDTO, error) {
	if yearsBack <= 0 {
		return nil, fmt.Errorf("%w: %d años", domain.ErrInvalidPeriod, yearsBack)
	}

	now := time.Now()
	records, err := uc.recordRepo.ListByPeriod(ctx, now.AddDate(-yearsBack, 0, 0), now)
	if err != nil {
		return nil, fmt.Errorf("seasonality: historial de ingresos: %w", err)
	}

	return Analyze(records, now), nil
}
