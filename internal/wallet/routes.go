package wallet

import "github.com/gofiber/fiber/v2"

type RouteConfig struct {
	DefaultUserID  string
	DefaultBalance int64
}

func RegisterRoutes(app fiber.Router, service *Service, cfg RouteConfig) {

	app.Get("/balance", func(c *fiber.Ctx) error {
		userID := c.Query("user_id", cfg.DefaultUserID)

		coin, err := service.GetOrCreate(userID, cfg.DefaultBalance)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}
		return c.JSON(fiber.Map{"user_id": userID, "coin": coin})
	})

	app.Post("/reset", func(c *fiber.Ctx) error {
		type Req struct {
			UserID string `json:"user_id"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil && len(c.Body()) > 0 {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
		}
		if r.UserID == "" {
			r.UserID = cfg.DefaultUserID
		}

		if err := service.SetBalance(r.UserID, cfg.DefaultBalance); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}
		return c.JSON(fiber.Map{"user_id": r.UserID, "coin": cfg.DefaultBalance})
	})
}
