package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrHasDependents      = errors.New("el recurso tiene registros asociados")
	ErrAttachmentRejected = errors.New("archivo adjunto rechazado")
	ErrFeatureDisabled    = errors.New("funcionalidad no habilitada para la empresa")
)
