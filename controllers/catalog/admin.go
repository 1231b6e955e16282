package catalogController

import (
	"log"
	"time"

	"elm/database"
	"elm/middleware"
	"elm/models/catalog"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a draft course and attaches it to the given tracks
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateCourse").(*validators.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	currency := reqData.Currency
	if currency == "" {
		currency = "EGP"
	}

	course := catalog.Course{
		Title:       reqData.Title,
		Excerpt:     reqData.Excerpt,
		Description: reqData.Description,
		Platform:    reqData.Platform,
		Price:       reqData.Price,
		Currency:    currency,
		Discount:    reqData.Discount,
		CategoryID:  reqData.CategoryID,
		Duration:    reqData.Duration,
		Level:       catalog.CourseLevel(reqData.Level),
		Status:      catalog.StatusDraft,
	}
	if err := db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	if len(reqData.TrackIDs) > 0 {
		var tracks []catalog.Track
		if err := db.Find(&tracks, reqData.TrackIDs).Error; err == nil && len(tracks) > 0 {
			if err := db.Model(&course).Association("Tracks").Append(&tracks); err != nil {
				log.Printf("Error attaching course %d to tracks: %v", course.ID, err)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

// CreateTrack creates a track and attaches existing courses
func CreateTrack(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateTrack").(*validators.CreateTrackRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	track := catalog.Track{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		Discount:    reqData.Discount,
	}
	if err := db.Create(&track).Error; err != nil {
		log.Printf("Error creating track: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create track!", nil)
	}

	if len(reqData.CourseIDs) > 0 {
		var courses []catalog.Course
		if err := db.Find(&courses, reqData.CourseIDs).Error; err == nil && len(courses) > 0 {
			if err := db.Model(&track).Association("Courses").Append(&courses); err != nil {
				log.Printf("Error attaching courses to track %d: %v", track.ID, err)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Track created successfully.", track)
}

// CreateCourseGroup schedules a new offering of a course
func CreateCourseGroup(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedCreateGroup").(*validators.CreateGroupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course catalog.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	startDate, _ := time.Parse("2006-01-02", reqData.StartDate)
	endDate, _ := time.Parse("2006-01-02", reqData.EndDate)
	if endDate.Before(startDate) {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "End date must not be before start date!", nil)
	}

	group := catalog.CourseGroup{
		CourseID:     course.ID,
		InstructorID: reqData.InstructorID,
		Price:        reqData.Price,
		StartDate:    startDate,
		EndDate:      endDate,
	}
	if err := db.Create(&group).Error; err != nil {
		log.Printf("Error creating group for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course group!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course group created successfully.", group)
}

// PublishCourse flips a draft course to published
func PublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	var course catalog.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.Model(&course).Update("status", catalog.StatusPublished).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully.", nil)
}
