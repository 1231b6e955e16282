package geoController

import (
	"strconv"

	"elm/database"
	"elm/middleware"
	"elm/models"

	"github.com/gofiber/fiber/v2"
)

// GetCountries lists all countries
func GetCountries(c *fiber.Ctx) error {
	db := database.Database.Db

	var countries []models.Country
	if err := db.Order("name").Find(&countries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch countries!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Countries fetched successfully.", countries)
}

// GetCities lists cities, narrowed to one country via ?country_id=. This is the
// filtered lookup the profile forms use to keep city choices consistent with
// the selected country.
func GetCities(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.City{}).Order("name")
	if raw := c.Query("country_id"); raw != "" {
		countryID, err := strconv.Atoi(raw)
		if err != nil || countryID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid country_id parameter!", nil)
		}
		query = query.Where("country_id = ?", countryID)
	}

	var cities []models.City
	if err := query.Find(&cities).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cities!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cities fetched successfully.", cities)
}

// GetNationalities lists all nationalities
func GetNationalities(c *fiber.Ctx) error {
	db := database.Database.Db

	var nationalities []models.Nationality
	if err := db.Order("name").Find(&nationalities).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch nationalities!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Nationalities fetched successfully.", nationalities)
}
