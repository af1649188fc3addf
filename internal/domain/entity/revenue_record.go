package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueRecord es un registro transaccional con fecha y monto: una comanda del
// bar o restaurante, una noche facturada por recepción, una sesión de spa.
// Es la única entrada del motor de analítica; el origen concreto (orden, reserva,
// línea de factura) es irrelevante aguas abajo.
type RevenueRecord struct {
	ID         string
	Department Department
	OccurredAt time.Time
	Total      decimal.Decimal     // ingreso bruto del registro
	COGS       decimal.NullDecimal // costo directo real; si no se conoce, el agregador lo estima
	Tax        decimal.Decimal     // impuestos incluidos en Total (0 si no aplica)
	CreatedAt  time.Time
}
