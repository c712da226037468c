package app

import (
	"context"
	"os"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"loto-platform/internal/admin"
	"loto-platform/internal/config"
	"loto-platform/internal/db"
	"loto-platform/internal/event"
	"loto-platform/internal/history"
	"loto-platform/internal/jobs"
	"loto-platform/internal/lottery"
	"loto-platform/internal/monitoring"
	"loto-platform/internal/security"
	"loto-platform/internal/wallet"
	"loto-platform/internal/ws"
)

type Server struct {
	app  *fiber.App
	cfg  *config.Config
	jobs *jobs.Manager
	log  *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	monitoring.Init()

	bus := event.NewBus()
	hub := ws.NewHub()
	walletService := wallet.New(database)
	historyService := history.New(database)
	leaderboard := lottery.NewLeaderboard()
	lotteryService := lottery.New(database, walletService, historyService,
		lottery.NewRNG(), bus, log, cfg.DefaultBalance)

	lottery.RegisterConsumers(bus, leaderboard, hub)

	app := fiber.New()
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		if _, err := os.Stat(cfg.IndexFile); err == nil {
			return c.SendFile(cfg.IndexFile)
		}
		return c.JSON(fiber.Map{"status": "ok", "message": "loto server is running"})
	})

	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		app.Static("/static", cfg.StaticDir)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/ws", websocket.New(hub.Handler))

	wallet.RegisterRoutes(app, walletService, wallet.RouteConfig{
		DefaultUserID:  cfg.DefaultUserID,
		DefaultBalance: cfg.DefaultBalance,
	})
	history.RegisterRoutes(app, historyService)
	lottery.RegisterRoutes(app, lotteryService, leaderboard, lottery.RouteConfig{
		DefaultUserID: cfg.DefaultUserID,
	})

	adminGroup := app.Group("/admin", security.AdminGuard(cfg.AdminToken))
	admin.RegisterRoutes(adminGroup, walletService, bus, admin.RouteConfig{
		DefaultBalance: cfg.DefaultBalance,
	})

	manager := jobs.New()
	if cfg.StatsInterval > 0 {
		manager.Register(cfg.StatsInterval, func() {
			users, coins, err := walletService.Stats()
			if err != nil {
				log.Warn("stats query failed", zap.Error(err))
				return
			}
			log.Info("platform stats",
				zap.Int64("users", users),
				zap.Int64("total_coins", coins),
			)
		})
	}

	return &Server{app: app, cfg: cfg, jobs: manager, log: log}, nil
}

func (s *Server) Start() error {
	go s.jobs.Start(context.Background())
	return s.app.Listen(":" + s.cfg.Port)
}
