package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
)

// SetupMiddlewares memasang middleware dasar dengan urutan rapi:
// recovery paling luar, lalu CORS, kompresi, dan header no-cache.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(NoCacheMiddleware())
}
