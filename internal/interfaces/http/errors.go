package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jframirez/Bodegas-api/internal/application/dto"
	"github.com/jframirez/Bodegas-api/internal/domain"
)

// respondDomainError traduce los errores centinela del dominio al status HTTP
// y código de la API. El mensaje conserva el detalle del error envuelto
// (ids, cantidades) para que el cliente sepa qué rechazó la operación.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
