package routes

import (
	"backend/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterCrawlerRoutes(app *fiber.App) {
	api := app.Group("/api/crawlers")

	api.Get("/", controllers.GetCrawlers)
	api.Get("/:id", controllers.GetCrawlerByID)
	api.Post("/", controllers.CreateCrawler)
	api.Put("/:id", controllers.UpdateCrawler)
	api.Delete("/:id", controllers.DeleteCrawler)
	api.Patch("/:id", controllers.PatchCrawlerStatus) // runner báo lại trạng thái
}
