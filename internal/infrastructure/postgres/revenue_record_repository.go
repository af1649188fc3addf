package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/hostalops-api/internal/domain/entity"
	"github.com/jhoicas/hostalops-api/internal/domain/repository"
)

var _ repository.RevenueRecordRepository = (*RevenueRecordRepo)(nil)

// RevenueRecordRepo consulta de solo lectura sobre la tabla revenue_records,
// la vista consolidada de ingresos (comandas POS, noches facturadas, sesiones
// de spa) que alimenta el motor de analítica.
type RevenueRecordRepo struct {
	pool *pgxpool.Pool
}

// NewRevenueRecordRepository construye el adaptador.
func NewRevenueRecordRepository(pool *pgxpool.Pool) *RevenueRecordRepo {
	return &RevenueRecordRepo{pool: pool}
}

// ListByPeriod devuelve los registros del período [from, to] ordenados por
// fecha ascendente. total y tax usan COALESCE: un registro con monto NULL
// entra como 0 en lugar de romper el pipeline; cogs queda NULL cuando no se
// conoce el costo real y el agregador lo estima aguas abajo.
func (r *RevenueRecordRepo) ListByPeriod(
	ctx context.Context,
	from, to time.Time,
) ([]entity.RevenueRecord, error) {
	const query = `
	SELECT
	    rr.id::TEXT,
	    rr.department,
	    rr.occurred_at,
	    COALESCE(rr.total, 0) AS total,
	    rr.cogs,
	    COALESCE(rr.tax, 0)   AS tax,
	    rr.created_at
	FROM revenue_records rr
	WHERE rr.occurred_at BETWEEN $1 AND $2
	  AND rr.status NOT IN ('VOID', 'DRAFT')
	ORDER BY rr.occurred_at ASC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("revenue.ListByPeriod: %w", err)
	}
	defer rows.Close()

	var records []entity.RevenueRecord
	for rows.Next() {
		var rec entity.RevenueRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Department,
			&rec.OccurredAt,
			&rec.Total,
			&rec.COGS,
			&rec.Tax,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("revenue.ListByPeriod scan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("revenue.ListByPeriod rows: %w", err)
	}
	return records, nil
}
