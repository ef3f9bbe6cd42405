package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicateUsername = errors.New("el username ya está registrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	// ErrStore envuelve cualquier falla del backend de persistencia; el texto
	// crudo del driver nunca cruza la frontera HTTP.
	ErrStore = errors.New("falla del almacenamiento")
)
