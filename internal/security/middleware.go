package security

import "github.com/gofiber/fiber/v2"

// AdminGuard compares X-Admin-Token for exact equality against the
// configured shared secret. No sessions, no expiry.
func AdminGuard(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("X-Admin-Token") != token {
			return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}
