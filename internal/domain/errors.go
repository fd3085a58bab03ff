package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUsernameExists = errors.New("el usuario ya existe")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	// ErrUnexpectedRows una sentencia afectó un número de filas distinto al esperado.
	ErrUnexpectedRows = errors.New("filas afectadas inesperadas")
)
