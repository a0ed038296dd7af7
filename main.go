package main

import (
	"coursehub/config"
	"coursehub/database"
	catalogRoutes "coursehub/routers/catalogRoutes"
	downloadRoutes "coursehub/routers/downloadRoutes"
	materialRoutes "coursehub/routers/materialRoutes"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	materialRoutes.SetupMaterialRoutes(app)
	downloadRoutes.SetupDownloadRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)

	// Sweeps bundle workspaces left behind by crashed requests
	utils.InitializeCleanupScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
