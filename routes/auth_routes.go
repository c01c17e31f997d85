package routes

import (
	"backend/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")
	auth.Post("/login", controllers.Login)
	auth.Post("/logout", controllers.Logout)
}
