package main

import (
	"log"

	"loto-platform/internal/app"
	"loto-platform/internal/config"
	"loto-platform/internal/logger"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	server, err := app.New(cfg, zl)
	if err != nil {
		log.Fatal(err)
	}
	log.Fatal(server.Start())
}
