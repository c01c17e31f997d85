package main

import (
	"backend/database"
	"backend/middleware"
	"backend/routes"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env nếu có, không ghi đè biến môi trường đã set sẵn.
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	requiredEnvVars := []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME", "JWT_SECRET"}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	database.ConnectDatabase()

	app := fiber.New()

	allowOrigins := os.Getenv("CORS_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowHeaders:     "Content-Type",
		AllowCredentials: true, // phiên nằm trong cookie auth-token
	}))
	app.Use(logger.New())
	app.Use(middleware.AuthRequired)

	routes.RegisterAuthRoutes(app)
	routes.RegisterAccountRoutes(app)
	routes.RegisterPlatformRoutes(app)
	routes.RegisterCrawlerRoutes(app)
	routes.RegisterProductRoutes(app)
	routes.RegisterHistoryRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "🚀 Price tracking dashboard backend is running!"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	fmt.Println("🚀 Server running on port " + port)
	log.Fatal(app.Listen(":" + port))
}
