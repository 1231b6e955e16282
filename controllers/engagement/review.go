package engagementController

import (
	"log"

	"elm/database"
	"elm/middleware"
	"elm/models/catalog"
	"elm/services"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateReview stores a course review by the authenticated user
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedCreateReview").(*validators.CreateReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course catalog.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	review := catalog.CourseReview{
		UserID:   userID,
		CourseID: course.ID,
		Rating:   reqData.Rating,
		Review:   reqData.Review,
	}
	if err := db.Create(&review).Error; err != nil {
		log.Printf("Error creating review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created successfully.", review)
}

// GetCourseReviews lists reviews of a course together with the average rating
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	var reviews []catalog.CourseReview
	if err := db.Where("course_id = ?", courseID).Preload("User").Order("created_at desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	rating, err := services.AverageRating(db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute rating!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully.", fiber.Map{
		"reviews":        reviews,
		"average_rating": rating,
	})
}
