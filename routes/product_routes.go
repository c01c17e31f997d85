package routes

import (
	"backend/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterProductRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/products", controllers.GetProducts)
	api.Get("/dashboard-data", controllers.GetDashboardData)
}
