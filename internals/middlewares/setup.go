package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pteguide_backend/internals/middlewares/logger"
)

func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(RequestIDMiddleware())
	app.Use(logger.LoggerMiddleware())
}

// RequestIDMiddleware echoes a caller-supplied X-Request-ID or mints one.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		return c.Next()
	}
}
