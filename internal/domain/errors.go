package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrInvalidHorizon = errors.New("horizonte de pronóstico inválido")
	ErrInvalidPeriod  = errors.New("período de consulta inválido")
)
