package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrUpstream       = errors.New("fuente de datos externa no disponible")
	ErrPageOutOfRange = errors.New("página fuera de rango")
	ErrInvalidTag     = errors.New("tipo de nota inválido")
)
