package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// AppVersion is stamped at build time via -ldflags.
var AppVersion = "dev"

// VersionMiddleware sets the X-App-Version response header and stores the
// version in the request context for templates.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-App-Version", AppVersion)
		c.Locals("appVersion", AppVersion)

		return c.Next()
	}
}
