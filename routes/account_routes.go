package routes

import (
	"backend/controllers"
	"backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterAccountRoutes(app *fiber.App) {
	// Quản lý tài khoản nằm dưới trang admin, API cũng chỉ admin được gọi.
	api := app.Group("/api/accounts", middleware.AdminOnly)

	api.Get("/", controllers.GetAccounts)
	api.Get("/:id", controllers.GetAccountByID)
	api.Post("/", controllers.CreateAccount)
	api.Put("/:id", controllers.UpdateAccount)
	api.Delete("/:id", controllers.DeleteAccount)
}
