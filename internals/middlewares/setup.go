package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"yayasanku_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain; order matters (recovery first).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
