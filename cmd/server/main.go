package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"esa-config/internal/api"
	"esa-config/internal/config"
	"esa-config/internal/permissions"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Config loaded (port: %d)", cfg.Server.Port)

	// 2. Build the fixture values once
	policy := permissions.Base()
	users := permissions.Users()
	log.Printf("Loaded %d indices and %d users", len(policy.IndexRules), len(users))

	// 3. Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: api.ErrorHandler,
	})
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))

	// 4. Register routes
	api.RegisterRoutes(app, api.NewHandler(policy, users))

	// 5. Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	log.Fatal(app.Listen(addr))
}
