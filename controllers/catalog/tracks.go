package catalogController

import (
	"elm/database"
	"elm/middleware"
	"elm/models/catalog"
	"elm/services"

	"github.com/gofiber/fiber/v2"
)

// GetAllTracks lists tracks with their courses for the storefront
func GetAllTracks(c *fiber.Ctx) error {
	db := database.Database.Db

	var tracks []catalog.Track
	if err := db.Preload("Courses").Preload("FAQs").Order("id").Find(&tracks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tracks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tracks fetched successfully.", tracks)
}

// GetTrackDetails returns one track with courses and derived pricing
func GetTrackDetails(c *fiber.Ctx) error {
	trackID := c.Locals("trackID").(uint)
	db := database.Database.Db

	var track catalog.Track
	if err := db.Preload("Courses").Preload("FAQs").First(&track, trackID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Track not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Track fetched successfully.", fiber.Map{
		"track":            track,
		"discounted_price": services.DiscountedPrice(track.Price, track.Discount),
	})
}
