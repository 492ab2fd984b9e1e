package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/example/otpking/internal/config"
	"github.com/example/otpking/internal/database"
	"github.com/example/otpking/internal/routes"
	"github.com/example/otpking/internal/seed"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	if err := seed.Run(db, cfg, zlog); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "OTP King Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, cfg, zlog)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
