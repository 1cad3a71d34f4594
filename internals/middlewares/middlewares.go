// internals/middlewares/middlewares.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares installs the app-wide chain. Order matters: recovery
// first so a panic in any later handler still yields a JSON 500.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
