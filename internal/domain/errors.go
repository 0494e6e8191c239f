package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrConfig       = errors.New("configuración inválida")
	ErrSchema       = errors.New("columna de stock no detectada")
	ErrFetch        = errors.New("no se pudo obtener la hoja de cálculo")
	ErrWebhook      = errors.New("fallo del webhook de reposición")
	ErrInvalidInput = errors.New("entrada inválida")
)
