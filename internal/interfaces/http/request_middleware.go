package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tu-usuario/pizzeria-pro/pkg/logger"
)

// LocalRequestID key del request ID en c.Locals.
const LocalRequestID = "request_id"

// RequestID asegura que toda petición tenga un identificador único. Si el
// cliente ya trae un X-Request-ID válido se reutiliza; si no, se genera un
// UUID v4. El ID se propaga en la respuesta y en c.Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if !isValidRequestID(id) {
			id = uuid.New().String()
		}
		c.Set("X-Request-ID", id)
		c.Locals(LocalRequestID, id)
		return c.Next()
	}
}

// isValidRequestID no vacío, máximo 128 bytes, solo ASCII imprimible.
func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > 128 {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x20 || id[i] > 0x7E {
			return false
		}
	}
	return true
}

// RequestLogger registra cada petición con método, ruta, status y duración.
// Debe montarse después de RequestID para incluir el request_id en la línea.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		reqID, _ := c.Locals(LocalRequestID).(string)
		evt := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		evt.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("http request")
		return err
	}
}
