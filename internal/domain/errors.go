package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrNoBusinessProfile  = errors.New("el usuario no tiene perfil de empresa")
	ErrProfileExists      = errors.New("el usuario ya tiene perfil de empresa")
	ErrUnknownSection     = errors.New("sección de onboarding desconocida")
	ErrUnknownDocType     = errors.New("tipo de documento desconocido")
	ErrUnknownAgreement   = errors.New("tipo de acuerdo desconocido")
	ErrUploadFailed       = errors.New("fallo al subir el archivo al file store")
)
