package domain

import "errors"

// Errores de dominio (sin dependencias externas). Las capas superiores los
// envuelven con fmt.Errorf("...: %w", err) agregando ids y cantidades, y los
// handlers HTTP los traducen a códigos de estado con errors.Is.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
