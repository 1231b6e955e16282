package geoRoutes

import (
	geoController "elm/controllers/geo"
	siteController "elm/controllers/site"

	"github.com/gofiber/fiber/v2"
)

// SetupGeoRoutes sets up public lookup and site content endpoints
func SetupGeoRoutes(app *fiber.App) {
	geoGroup := app.Group("/geo")
	geoGroup.Get("/countries", geoController.GetCountries)
	geoGroup.Get("/cities", geoController.GetCities)
	geoGroup.Get("/nationalities", geoController.GetNationalities)

	app.Get("/events", siteController.GetEvents)
	app.Get("/pages/:kind", siteController.GetPage)
}
