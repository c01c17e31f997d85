package routes

import (
	"backend/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterPlatformRoutes(app *fiber.App) {
	api := app.Group("/api/platforms")

	api.Get("/", controllers.GetPlatforms)
	api.Get("/:id", controllers.GetPlatformByID)
	api.Post("/", controllers.CreatePlatform)
	api.Put("/:id", controllers.UpdatePlatform)
	api.Delete("/:id", controllers.DeletePlatform)
}
