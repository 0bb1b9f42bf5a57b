package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "planhebdo_backend/internals/middlewares/logger"
)

// SetupMiddlewares branche la pile commune à toutes les routes.
func SetupMiddlewares(app *fiber.App) {
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(GlobalRateLimiter())
}
