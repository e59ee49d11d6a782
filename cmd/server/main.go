// Package main is the entry point for the application. It wires the
// in-memory stores, the notification hub and the HTTP server.
package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"paycore/internal/config"
	"paycore/internal/models"
	"paycore/internal/repositories"
	"paycore/internal/routes"
	"paycore/internal/services/notification"
)

func main() {
	config.LoadEnv()

	accountRepo := repositories.NewMemoryAccountRepository()
	userRepo := repositories.NewMemoryUserRepository()

	hub := notification.NewHub()
	hub.Subscribe(notification.NewLogListener())

	if config.GetBoolEnv("SEED_DEMO_DATA", false) {
		seedDemoData(accountRepo)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/payments", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("PAYMENT_RATE_LIMIT", 60),
		Expiration: time.Minute,
	}))

	routes.SetupRoutes(app, accountRepo, userRepo, hub)

	port := config.GetEnv("PORT", "3000")
	log.Printf("listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// seedDemoData creates a couple of accounts so the payment endpoint can
// be exercised without going through the accounts API first.
func seedDemoData(repo repositories.AccountRepository) {
	now := time.Now()
	demo := []models.Account{
		{ID: "demo-checking", OwnerID: "demo", Type: models.AccountChecking, Balance: 1000, CreatedAt: now, UpdatedAt: now},
		{ID: "demo-savings", OwnerID: "demo", Type: models.AccountSavings, Balance: 5000, CreatedAt: now, UpdatedAt: now},
	}
	for i := range demo {
		if err := repo.Create(&demo[i]); err != nil {
			log.Printf("failed to seed account %s: %v", demo[i].ID, err)
		}
	}
	log.Printf("seeded %d demo accounts", len(demo))
}
