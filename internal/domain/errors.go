package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrMissingField         = errors.New("nombre y teléfono son requeridos")
	ErrInvalidLocation      = errors.New("ubicación inválida")
	ErrInconsistentLocation = errors.New("la ubicación no corresponde a la jerarquía declarada")
)
