package history

import "github.com/gofiber/fiber/v2"

const defaultLimit = 20

func RegisterRoutes(app fiber.Router, service *Service) {

	app.Get("/history", func(c *fiber.Ctx) error {
		userID := c.Query("user_id")
		limit := c.QueryInt("limit", defaultLimit)
		if limit <= 0 {
			limit = defaultLimit
		}

		entries, err := service.Query(userID, limit)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}
		return c.JSON(entries)
	})
}
