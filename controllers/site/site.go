package siteController

import (
	"elm/database"
	"elm/middleware"
	"elm/models"

	"github.com/gofiber/fiber/v2"
)

// GetEvents lists upcoming and past marketing events with photo galleries
func GetEvents(c *fiber.Ctx) error {
	db := database.Database.Db

	var events []models.Event
	if err := db.Preload("PhotoGallery").Order("start_date desc").Find(&events).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch events!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Events fetched successfully.", events)
}

// GetPage returns the ordered content blocks of one static page
func GetPage(c *fiber.Ctx) error {
	kind := models.SitePageKind(c.Params("kind"))
	switch kind {
	case models.PageAbout, models.PagePrivacy, models.PageTerms:
	default:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Page not found!", nil)
	}

	db := database.Database.Db

	var blocks []models.SitePage
	if err := db.Where("kind = ?", kind).Order("position").Find(&blocks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch page!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Page fetched successfully.", blocks)
}
