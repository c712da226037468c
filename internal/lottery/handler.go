package lottery

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	DefaultUserID string
}

func RegisterRoutes(r fiber.Router, service *Service, lb *Leaderboard, cfg RouteConfig) {

	r.Post("/play", func(c *fiber.Ctx) error {

		type Req struct {
			UserID string `json:"user_id"`
			Bet    int64  `json:"bet"`
		}

		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.UserID == "" {
			body.UserID = cfg.DefaultUserID
		}

		result, err := service.Play(PlayRequest{
			UserID: body.UserID,
			Bet:    body.Bet,
		})

		if err != nil {
			var rejection *RejectionError
			if errors.As(err, &rejection) {
				// Rejections are ordinary responses, not failures.
				return c.JSON(fiber.Map{
					"error":   rejection.Reason,
					"balance": rejection.Balance,
				})
			}
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}

		return c.JSON(result)
	})

	r.Get("/leaderboard", func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 10)
		if limit <= 0 {
			limit = 10
		}
		return c.JSON(fiber.Map{"leaders": lb.Top(limit)})
	})
}
