package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"iskolar_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the shared middleware chain.
// Order: recovery first, then CORS, request log, global limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
