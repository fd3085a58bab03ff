package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/chilaquiles-api/pkg/logger"
)

// UseBaseMiddleware monta requestid, el log de acceso y recover, en ese orden.
// recover queda dentro del log: un panic se registra como 500.
func UseBaseMiddleware(app *fiber.App, log *logger.Logger) {
	app.Use(requestid.New())
	app.Use(RequestLogger(log))
	app.Use(recover.New())
}

// RequestLogger registra una línea por petición con método, ruta, status, latencia y request id.
// Debe montarse después del middleware requestid.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// deja que el ErrorHandler de Fiber escriba la respuesta antes de leer el status
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		rid, _ := c.Locals("requestid").(string)
		reqLog := log.With().Str("request_id", rid).Logger()

		status := c.Response().StatusCode()
		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = reqLog.Error()
		case status >= fiber.StatusBadRequest:
			ev = reqLog.Warn()
		default:
			ev = reqLog.Info()
		}
		if herr, ok := c.Locals(LocalError).(error); ok {
			ev = ev.Err(herr)
		} else if chainErr != nil {
			ev = ev.Err(chainErr)
		}
		if uid := GetUserID(c); uid != 0 {
			ev = ev.Int64("user_id", uid)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return nil
	}
}
