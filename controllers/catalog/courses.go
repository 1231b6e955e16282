package catalogController

import (
	"elm/database"
	"elm/middleware"
	"elm/models/catalog"
	"elm/services"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses with optional category/level filters
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*validators.CourseListQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	db := database.Database.Db

	query := db.Model(&catalog.Course{}).Where("status = ?", catalog.StatusPublished)
	if reqData.CategoryID != nil {
		query = query.Where("category_id = ?", *reqData.CategoryID)
	}
	if reqData.Level != "" {
		query = query.Where("level = ?", reqData.Level)
	}

	var total int64
	query.Count(&total)

	var courses []catalog.Course
	offset := (reqData.Page - 1) * reqData.Limit
	if err := query.Preload("Category").Offset(offset).Limit(reqData.Limit).Order("id").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", response)
}

// GetCourseDetails returns a course with its content children and the derived
// storefront numbers (discounted price, average rating).
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	var course catalog.Course
	err := db.Preload("Category").
		Preload("Tracks").
		Preload("Syllabuses").
		Preload("Outcomes").
		Preload("Sections.Lessons").
		Preload("Requirements").
		Preload("FAQs").
		Preload("Groups").
		First(&course, courseID).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	rating, err := services.AverageRating(db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course rating!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", fiber.Map{
		"course":           course,
		"discounted_price": services.DiscountedPrice(course.Price, course.Discount),
		"average_rating":   rating,
	})
}

// GetCategories lists course categories
func GetCategories(c *fiber.Ctx) error {
	db := database.Database.Db

	var categories []catalog.Category
	if err := db.Order("name").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully.", categories)
}
