package main

import (
	"elm/cache"
	"elm/config"
	"elm/database"
	authRoutes "elm/routers/authRoutes"
	billingRoutes "elm/routers/billingRoutes"
	catalogRoutes "elm/routers/catalogRoutes"
	enrollmentRoutes "elm/routers/enrollmentRoutes"
	engagementRoutes "elm/routers/engagementRoutes"
	geoRoutes "elm/routers/geoRoutes"
	leadRoutes "elm/routers/leadRoutes"
	userRoutes "elm/routers/userRoutes"
	"elm/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	cache.Connect()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	billingRoutes.SetupBillingRoutes(app)
	engagementRoutes.SetupEngagementRoutes(app)
	leadRoutes.SetupLeadRoutes(app)
	geoRoutes.SetupGeoRoutes(app)

	utils.InitializeInstallmentScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
