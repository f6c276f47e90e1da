package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnknownEvent    = errors.New("tipo de evento desconocido")
	ErrQueryNotAllowed = errors.New("solo se permiten consultas SELECT")
)
