package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("factura no encontrada")
	ErrItemNotFound      = errors.New("ítem no encontrado en la factura")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrNotDraft          = errors.New("los ítems solo se modifican en estado draft")
	ErrDuplicateNumber   = errors.New("el número de factura ya existe")
	ErrConfiguration     = errors.New("dependencia requerida no configurada")
)
