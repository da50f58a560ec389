package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, users *UserHandler, game *GameHandler, health *HealthHandler) {
	app.Get("/health", health.Health)

	api := app.Group("/api")
	api.Get("/health", health.Health)

	api.Post("/users", users.Register)
	api.Post("/users/login", users.Login)
	api.Get("/users", users.ListUsers)
	api.Get("/users/:id", users.GetUser)

	api.Post("/sessions", game.CreateSession)
	api.Get("/users/:id/sessions", game.ListSessions)
	api.Post("/sentence-attempts", game.CreateAttempt)
	api.Get("/users/:id/stats", game.GetUserStats)
	api.Get("/leaderboard", game.GetLeaderboard)
}
