package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrInvalidID    = errors.New("id inválido")
	ErrStoreClosed  = errors.New("almacén de libros cerrado")
)
