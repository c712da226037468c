package admin

import (
	"github.com/gofiber/fiber/v2"

	"loto-platform/internal/event"
	"loto-platform/internal/wallet"
)

type RouteConfig struct {
	DefaultBalance int64
}

// RegisterRoutes mounts the operator endpoints. The caller is expected
// to have wrapped the router in security.AdminGuard.
func RegisterRoutes(app fiber.Router, service *wallet.Service, bus *event.Bus, cfg RouteConfig) {

	app.Get("/users", func(c *fiber.Ctx) error {
		users, err := service.List()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}
		return c.JSON(fiber.Map{"users": users})
	})

	app.Post("/set_coin", func(c *fiber.Ctx) error {
		type Req struct {
			UserID string `json:"user_id"`
			Coin   int64  `json:"coin"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
		}
		if r.UserID == "" {
			return c.Status(400).JSON(fiber.Map{"error": "user_id is required"})
		}

		if err := service.SetBalance(r.UserID, r.Coin); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}
		bus.Publish(event.EventBalanceAdjusted, r.UserID)
		return c.JSON(fiber.Map{"user_id": r.UserID, "coin": r.Coin})
	})

	app.Post("/reset_all", func(c *fiber.Ctx) error {
		if err := service.ResetAll(cfg.DefaultBalance); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}
		users, err := service.List()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}
		bus.Publish(event.EventBalanceAdjusted, "")
		return c.JSON(fiber.Map{"users": users})
	})
}
