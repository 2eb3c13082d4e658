package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// NoCacheMiddleware mematikan caching klien/proxy di semua response
// supaya browser tidak menyimpan 304 untuk data yang baru di-upload.
func NoCacheMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return err
	}
}
