package main

import (
	"aptivo/config"
	"aptivo/database"
	authRoutes "aptivo/routers/authRoutes"
	contentRoutes "aptivo/routers/contentRoutes"
	practiceRoutes "aptivo/routers/practiceRoutes"
	questionRoutes "aptivo/routers/questionRoutes"
	tenantRoutes "aptivo/routers/tenantRoutes"
	"aptivo/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	questionRoutes.SetupQuestionRoutes(app)
	tenantRoutes.SetupTenantRoutes(app)
	practiceRoutes.SetupPracticeRoutes(app)

	cronScheduler := utils.InitializeSchedulers()
	defer cronScheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
