package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrShiftAlreadyOpen = errors.New("ya existe un turno abierto")
	ErrNoOpenShift      = errors.New("no hay turno abierto")
	ErrBadCredentials   = errors.New("credenciales inválidas")
)
