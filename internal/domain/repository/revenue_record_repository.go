package repository

import (
	"context"
	"time"

	"github.com/jhoicas/hostalops-api/internal/domain/entity"
)

// RevenueRecordRepository define la consulta de lectura que alimenta el motor
// de analítica. Las implementaciones son read-only (no modifican datos).
//
// El motor trata este fetch como un único paso bloqueante: primero se traen
// todos los registros del período y después corre el pipeline en memoria.
// No hay soporte de entrada parcial ni streaming.
type RevenueRecordRepository interface {
	// ListByPeriod devuelve los registros de ingreso cuyo OccurredAt cae en
	// [from, to], de todos los departamentos, ordenados por fecha ascendente.
	ListByPeriod(ctx context.Context, from, to time.Time) ([]entity.RevenueRecord, error)
}
