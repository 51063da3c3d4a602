package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jframirez/Bodegas-api/pkg/metrics"
)

// AccessLog registra cada petición atendida: método, ruta, status, duración y
// request id. Toda operación del ledger entra por HTTP, así que esta línea
// deja constancia del resultado de cada operación.
func AccessLog(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := responseStatus(c, err)
		evt := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = log.Error()
		case status >= fiber.StatusBadRequest:
			evt = log.Warn()
		}
		reqID, _ := c.Locals("requestid").(string)
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("request_id", reqID).
			Msg("petición atendida")
		return err
	}
}

// Metrics cuenta cada petición y observa su duración. Las etiquetas usan la
// plantilla de la ruta registrada (p. ej. /api/stock/:id) y no la URL cruda,
// para mantener acotada la cardinalidad.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := responseStatus(c, err)
		m.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.HTTPDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// responseStatus resuelve el status final aun cuando el handler devolvió un
// error que el error handler de fiber convertirá después de este middleware.
func responseStatus(c *fiber.Ctx, err error) int {
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe.Code
		}
		return fiber.StatusInternalServerError
	}
	return c.Response().StatusCode()
}
