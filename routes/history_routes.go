package routes

import (
	"backend/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterHistoryRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/histories", controllers.GetHistories)
}
