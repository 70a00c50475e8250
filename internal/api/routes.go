package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/leaderboard", handler.Leaderboard)

	users := api.Group("/users/:id")
	users.Get("/week", handler.UserWeek)
	users.Get("/badges", handler.UserBadges)
}
