// Package routes defines the API routing configuration and wires
// services to their handlers.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"paycore/internal/handlers"
	"paycore/internal/repositories"
	"paycore/internal/services/account"
	"paycore/internal/services/notification"
	"paycore/internal/services/payment"
	"paycore/internal/services/user"
)

// SetupRoutes builds the service graph over the given stores and
// registers all application routes.
func SetupRoutes(app *fiber.App, accountRepo repositories.AccountRepository, userRepo repositories.UserRepository, hub *notification.Hub) {
	accountService := account.NewService(accountRepo)
	userService := user.NewService(userRepo)
	paymentService := payment.NewService(accountRepo, hub)

	paymentHandler := handlers.NewPaymentHandler(paymentService)
	accountHandler := handlers.NewAccountHandler(accountService)
	userHandler := handlers.NewUserHandler(userService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	api.Post("/payments", paymentHandler.ProcessPayment)

	api.Post("/accounts", accountHandler.OpenAccount)
	api.Get("/accounts/:id", accountHandler.GetAccount)
	api.Post("/accounts/:id/deposit", accountHandler.Deposit)

	api.Post("/users", userHandler.CreateUser)
	api.Get("/users", userHandler.ListUsers)
	api.Get("/users/:id", userHandler.GetUser)
	api.Put("/users/:id", userHandler.UpdateUser)
	api.Delete("/users/:id", userHandler.DeleteUser)
}
